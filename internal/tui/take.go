package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

// takeView drives one quiz attempt: pick options question by question,
// submit once, then review the scored result in place.
type takeView struct {
	session *flow.QuizSession
	attempt models.QuizAttempt
	opt     int
	trigger flow.Trigger
}

func newTakeView() *takeView {
	return &takeView{}
}

func (v *takeView) open(quiz *models.Quiz, questions []models.QuizQuestion, attempt *models.QuizAttempt) {
	v.session = flow.NewQuizSession(*quiz, questions)
	v.attempt = *attempt
	v.opt = 0
	v.trigger = flow.Trigger{}
}

// syncOpt points the option cursor at the recorded answer when one
// exists for the current question.
func (v *takeView) syncOpt() {
	if recorded, ok := v.session.Answer(v.session.Index()); ok {
		v.opt = recorded
	} else {
		v.opt = 0
	}
}

func (v *takeView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	if v.session == nil {
		return nil
	}
	if v.trigger.InFlight() {
		return nil
	}
	if v.session.Submitted() {
		switch msg.String() {
		case "esc", "enter":
			return a.navigate(scrQuizzes)
		case "right", "n":
			v.session.Advance()
		case "left", "p":
			v.session.Retreat()
		}
		return nil
	}

	switch key := msg.String(); key {
	case "esc":
		return a.navigate(scrQuizzes)
	case "up", "k":
		if v.opt > 0 {
			v.opt--
		}
	case "down", "j":
		if q := v.session.Current(); q != nil && v.opt < len(q.Options)-1 {
			v.opt++
		}
	case " ", "enter":
		v.session.RecordAnswer(v.session.Index(), v.opt)
	case "right", "n":
		v.session.Advance()
		v.syncOpt()
	case "left", "p":
		v.session.Retreat()
		v.syncOpt()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if v.session.JumpTo(int(key[0]-'1')) {
			v.syncOpt()
		}
	case "s":
		if v.session.AnsweredCount() == 0 {
			return a.setNotice("Answer at least one question first", true)
		}
		if !v.trigger.Fire() {
			return nil
		}
		return a.submitAttemptCmd(v.attempt.ID, v.session.SubmitPayload())
	}
	return nil
}

func (v *takeView) view(a *App) string {
	if v.session == nil {
		return a.header()
	}
	if v.session.Submitted() {
		return v.resultsView()
	}

	quiz := v.session.Quiz()
	q := v.session.Current()
	body := titleStyle.Render(quiz.Title)
	if q == nil {
		return body + "\n\n" + dimStyle.Render("This quiz has no questions.") + "\n" + keyHint("esc", "back")
	}

	body += dimStyle.Render(fmt.Sprintf("  question %d/%d · %d answered", v.session.Index()+1, v.session.Len(), v.session.AnsweredCount()))
	body += "\n" + v.dots() + "\n\n"
	body += rowStyle.Render(q.Question) + "\n\n"

	recorded, answered := v.session.Answer(v.session.Index())
	for i, opt := range q.Options {
		marker := "( )"
		if answered && i == recorded {
			marker = noticeStyle.Render("(●)")
		}
		line := fmt.Sprintf("%s %s", marker, opt)
		if i == v.opt {
			body += selectedRowStyle.Render("> "+line) + "\n"
		} else {
			body += rowStyle.Render("  "+line) + "\n"
		}
	}

	if v.trigger.InFlight() {
		body += "\n" + dimStyle.Render("submitting...")
	} else {
		body += "\n" + keyHint("↑/↓", "option", "enter", "answer", "←/→", "question", "1-9", "jump", "s", "submit", "esc", "quit")
	}
	return body
}

// dots marks each question as answered, current or untouched.
func (v *takeView) dots() string {
	out := ""
	for i := 0; i < v.session.Len(); i++ {
		_, answered := v.session.Answer(i)
		switch {
		case i == v.session.Index():
			out += footerKeyStyle.Render("●")
		case answered:
			out += noticeStyle.Render("●")
		default:
			out += dimStyle.Render("○")
		}
	}
	return out
}

func (v *takeView) resultsView() string {
	quiz := v.session.Quiz()
	attempt := v.session.Attempt()

	body := titleStyle.Render(quiz.Title) + "  " + noticeStyle.Render("Results") + "\n\n"
	if attempt.ScorePercent != nil && attempt.CorrectCount != nil {
		body += fmt.Sprintf("Score: %.0f%% (%d/%d correct)\n\n", *attempt.ScorePercent, *attempt.CorrectCount, v.session.Len())
	}

	q := v.session.Current()
	body += dimStyle.Render(fmt.Sprintf("question %d/%d", v.session.Index()+1, v.session.Len())) + "\n"
	body += rowStyle.Render(q.Question) + "\n\n"

	recorded, answered := v.session.Answer(v.session.Index())
	for i, opt := range q.Options {
		line := "  " + opt
		switch {
		case i == q.CorrectIndex:
			line = noticeStyle.Render("✓ " + opt)
		case answered && i == recorded:
			line = errorStyle.Render("✗ " + opt)
		default:
			line = rowStyle.Render(line)
		}
		body += line + "\n"
	}
	if q.Explanation != "" {
		body += "\n" + dimStyle.Render(q.Explanation) + "\n"
	}
	return body + keyHint("←/→", "review", "esc", "done")
}

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/api"
	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

type summariesView struct {
	list  listCore[models.Summary]
	stale bool
}

func newSummariesView() *summariesView {
	return &summariesView{}
}

func (v *summariesView) startLoad() tea.Cmd {
	v.list.startLoad()
	return nil
}

func (v *summariesView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		v.list.up()
	case "down", "j":
		v.list.down()
	case "tab":
		return a.cycleMain(false)
	case "shift+tab":
		return a.cycleMain(true)
	case "r":
		v.list.startLoad()
		return a.fetchSummariesCmd()
	case "enter":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		a.summaryDetail.open(item)
		a.screen = scrSummaryDetail
	case "c":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		a.chat.open(item)
		a.screen = scrChat
		return a.chat.init()
	case "f":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		id := item.ID
		return a.favoriteCmd(func(ctx context.Context) ([]flow.Collection, error) {
			return a.client.ToggleSummaryFavorite(ctx, id)
		})
	case "q":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		a.form = newQuizForm(a, item)
	case "x":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		a.form = newFlashcardsForm(a, item)
	case "d":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		id := item.ID
		a.confirm = newConfirm("Delete summary",
			fmt.Sprintf("Delete %q? Quizzes and decks built from it keep their copies.", item.Title),
			func() tea.Cmd {
				return a.deleteCmd(func(ctx context.Context) ([]flow.Collection, error) {
					return a.client.DeleteSummary(ctx, id)
				})
			})
	case "ctrl+l":
		return a.logoutCmd()
	}
	return nil
}

func (v *summariesView) view(a *App) string {
	body := a.header()
	if st := v.list.status("No summaries yet. Generate one from a document."); st != "" {
		return body + st + "\n" + v.footer()
	}

	for i, item := range v.list.items {
		fav := " "
		if item.IsFavorite {
			fav = starStyle.Render("★")
		}
		row := fmt.Sprintf("%s %-9s %4dw  %s", fav, item.Format, item.WordCount, item.Title)
		if i == v.list.sel {
			body += selectedRowStyle.Render("> "+row) + "\n"
		} else {
			body += rowStyle.Render("  "+row) + "\n"
		}
	}
	return body + v.footer()
}

func (v *summariesView) footer() string {
	return keyHint("enter", "read", "c", "chat", "f", "favorite", "q", "quiz", "x", "flashcards", "d", "delete", "tab", "switch")
}

// positiveCount parses a count field; generation never leaves the
// client with a non-positive count.
func positiveCount(raw, what string) (int, string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, "Number of " + what + " must be a positive number"
	}
	return n, ""
}

func newQuizForm(a *App, summary models.Summary) *formView {
	summaryID := summary.ID
	return newForm("Generate quiz: "+summary.Title,
		func(values []string) (tea.Cmd, string) {
			n, errText := positiveCount(values[1], "questions")
			if errText != "" {
				return nil, errText
			}
			req := models.GenerateQuizRequest{
				SummaryID:    summaryID,
				Title:        strings.TrimSpace(values[0]),
				NumQuestions: n,
				Difficulty:   values[2],
			}
			if req.Title == "" {
				req.Title = summary.Title
			}
			return a.generateCmd("Quiz generation started", func(ctx context.Context) (*api.GenerateResult, []flow.Collection, error) {
				return a.client.GenerateQuiz(ctx, req)
			}), ""
		},
		textField("Title", summary.Title, ""),
		textField("Questions", "10", "10"),
		choiceField("Difficulty", "mixed", "easy", "medium", "hard"),
	)
}

func newFlashcardsForm(a *App, summary models.Summary) *formView {
	summaryID := summary.ID
	return newForm("Generate flashcards: "+summary.Title,
		func(values []string) (tea.Cmd, string) {
			n, errText := positiveCount(values[1], "cards")
			if errText != "" {
				return nil, errText
			}
			req := models.GenerateFlashcardsRequest{
				SummaryID: summaryID,
				Title:     strings.TrimSpace(values[0]),
				NumCards:  n,
				Strategy:  values[2],
			}
			if req.Title == "" {
				req.Title = summary.Title
			}
			return a.generateCmd("Flashcard generation started", func(ctx context.Context) (*api.GenerateResult, []flow.Collection, error) {
				return a.client.GenerateFlashcards(ctx, req)
			}), ""
		},
		textField("Title", summary.Title, ""),
		textField("Cards", "20", "20"),
		choiceField("Strategy", "term_definition", "question_answer"),
	)
}

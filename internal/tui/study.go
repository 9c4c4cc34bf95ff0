package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

// studyView drives one deck study session: flip, traverse with
// wraparound, star optimistically, rate after reveal.
type studyView struct {
	title   string
	session *flow.DeckSession
}

func newStudyView() *studyView {
	return &studyView{}
}

func (v *studyView) open(deck *models.DeckWithCards, rollbackOnFailure bool) {
	v.title = deck.Deck.Title
	v.session = flow.NewDeckSession(deck.Cards, rollbackOnFailure)
}

func (v *studyView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	if v.session == nil {
		return nil
	}

	switch key := msg.String(); key {
	case "esc":
		return a.navigate(scrDecks)
	case " ", "enter":
		v.session.Flip()
	case "right", "n", "l":
		v.session.Advance()
	case "left", "p", "h":
		v.session.Retreat()
	case "s":
		card := v.session.Current()
		if card == nil {
			return nil
		}
		if _, ok := v.session.BeginStarToggle(card.ID); !ok {
			return nil
		}
		return a.toggleStarCmd(card.ID)
	case "0", "1", "2", "3":
		card := v.session.Current()
		if card == nil || !v.session.Revealed() {
			return nil
		}
		rating, _ := strconv.Atoi(key)
		return a.rateCardCmd(card.ID, rating)
	}
	return nil
}

func (v *studyView) view(a *App) string {
	if v.session == nil {
		return a.header()
	}

	body := titleStyle.Render(v.title)
	card := v.session.Current()
	if card == nil {
		return body + "\n\n" + dimStyle.Render("This deck has no cards.") + "\n" + keyHint("esc", "back")
	}

	star := dimStyle.Render("☆")
	if v.session.Starred(card.ID) {
		star = starStyle.Render("★")
	}
	if v.session.StarPending(card.ID) {
		star += dimStyle.Render("?")
	}
	body += dimStyle.Render(fmt.Sprintf("  card %d/%d  ", v.session.Index()+1, v.session.Len())) + star + "\n\n"

	if v.session.Revealed() {
		face := card.Back
		if card.Mnemonic != nil && *card.Mnemonic != "" {
			face += "\n\n" + dimStyle.Render("Mnemonic: "+*card.Mnemonic)
		}
		if card.Example != nil && *card.Example != "" {
			face += "\n\n" + dimStyle.Render("Example: "+*card.Example)
		}
		body += answerCardStyle.Render(face) + "\n"
		body += keyHint("space", "hide", "←/→", "move", "s", "star", "0-3", "rate", "esc", "back")
	} else {
		body += cardStyle.Render(card.Front) + "\n"
		body += keyHint("space", "reveal", "←/→", "move", "s", "star", "esc", "back")
	}
	return body
}

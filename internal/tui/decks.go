package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

type decksView struct {
	list    listCore[models.FlashcardDeck]
	stale   bool
	opening bool
}

func newDecksView() *decksView {
	return &decksView{}
}

func (v *decksView) startLoad() tea.Cmd {
	v.list.startLoad()
	return nil
}

func (v *decksView) update(a *App, msg tea.KeyMsg) tea.Cmd {
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
		return a.fetchDecksCmd()
	case "enter":
		item, ok := v.list.current()
		if !ok || v.opening {
			return nil
		}
		v.opening = true
		return a.openDeckCmd(item.ID)
	case "f":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		id := item.ID
		return a.favoriteCmd(func(ctx context.Context) ([]flow.Collection, error) {
			return a.client.ToggleDeckFavorite(ctx, id)
		})
	case "d":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		id := item.ID
		a.confirm = newConfirm("Delete deck",
			fmt.Sprintf("Delete %q and its %d cards?", item.Title, item.CardCount),
			func() tea.Cmd {
				return a.deleteCmd(func(ctx context.Context) ([]flow.Collection, error) {
					return a.client.DeleteDeck(ctx, id)
				})
			})
	case "ctrl+l":
		return a.logoutCmd()
	}
	return nil
}

func (v *decksView) view(a *App) string {
	body := a.header()
	if st := v.list.status("No flashcard decks yet. Generate one from a summary."); st != "" {
		return body + st + "\n" + v.footer()
	}

	for i, item := range v.list.items {
		fav := " "
		if item.IsFavorite {
			fav = starStyle.Render("★")
		}
		row := fmt.Sprintf("%s %3d cards  %s", fav, item.CardCount, item.Title)
		if i == v.list.sel {
			body += selectedRowStyle.Render("> "+row) + "\n"
		} else {
			body += rowStyle.Render("  "+row) + "\n"
		}
	}
	return body + v.footer()
}

func (v *decksView) footer() string {
	return keyHint("enter", "study", "f", "favorite", "d", "delete", "tab", "switch")
}

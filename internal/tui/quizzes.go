package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

type quizzesView struct {
	list    listCore[models.Quiz]
	stale   bool
	opening bool
}

func newQuizzesView() *quizzesView {
	return &quizzesView{}
}

func (v *quizzesView) startLoad() tea.Cmd {
	v.list.startLoad()
	return nil
}

func (v *quizzesView) update(a *App, msg tea.KeyMsg) tea.Cmd {
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
		return a.fetchQuizzesCmd()
	case "enter":
		item, ok := v.list.current()
		if !ok || v.opening {
			return nil
		}
		v.opening = true
		return a.openQuizCmd(item.ID)
	case "d":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		id := item.ID
		a.confirm = newConfirm("Delete quiz",
			fmt.Sprintf("Delete %q?", item.Title),
			func() tea.Cmd {
				return a.deleteCmd(func(ctx context.Context) ([]flow.Collection, error) {
					return a.client.DeleteQuiz(ctx, id)
				})
			})
	case "ctrl+l":
		return a.logoutCmd()
	}
	return nil
}

func (v *quizzesView) view(a *App) string {
	body := a.header()
	if st := v.list.status("No quizzes yet. Generate one from a summary."); st != "" {
		return body + st + "\n" + v.footer()
	}

	for i, item := range v.list.items {
		fav := " "
		if item.IsFavorite {
			fav = starStyle.Render("★")
		}
		row := fmt.Sprintf("%s %3d questions  %s", fav, item.QuestionCount, item.Title)
		if i == v.list.sel {
			body += selectedRowStyle.Render("> "+row) + "\n"
		} else {
			body += rowStyle.Render("  "+row) + "\n"
		}
	}
	return body + v.footer()
}

func (v *quizzesView) footer() string {
	return keyHint("enter", "take", "d", "delete", "tab", "switch")
}

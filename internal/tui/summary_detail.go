package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lectura-cli/internal/models"
)

// summaryDetailView shows one summary's full text in a scrollable
// viewport. The text is displayed plain; no markdown rendering.
type summaryDetailView struct {
	summary models.Summary
	vp      viewport.Model
	ready   bool
}

func newSummaryDetailView() *summaryDetailView {
	return &summaryDetailView{vp: viewport.New(80, 20)}
}

func (v *summaryDetailView) open(s models.Summary) {
	v.summary = s
	v.ready = true
	v.vp.GotoTop()
	v.setContent()
}

func (v *summaryDetailView) resize(w, h int) {
	v.vp.Width = w - 2
	if h > 8 {
		v.vp.Height = h - 6
	}
	v.setContent()
}

func (v *summaryDetailView) setContent() {
	if !v.ready {
		return
	}
	wrapped := lipgloss.NewStyle().Width(v.vp.Width).Render(v.summary.Body())
	v.vp.SetContent(wrapped)
}

func (v *summaryDetailView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return a.navigate(scrSummaries)
	case "c":
		a.chat.open(v.summary)
		a.screen = scrChat
		return a.chat.init()
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return cmd
}

func (v *summaryDetailView) view(a *App) string {
	head := titleStyle.Render(v.summary.Title) +
		dimStyle.Render(fmt.Sprintf("  %s · %d words", v.summary.Format, v.summary.WordCount))
	return head + "\n\n" + v.vp.View() + "\n" +
		keyHint("↑/↓", "scroll", "c", "chat", "esc", "back")
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

// chatView is the conversational surface over one summary. The thread
// itself lives in flow.Thread; this view only renders it and feeds it
// keystrokes.
type chatView struct {
	summary models.Summary
	thread  flow.Thread
	input   textinput.Model
	vp      viewport.Model
}

func newChatView() *chatView {
	v := &chatView{vp: viewport.New(80, 16)}
	v.input = textinput.New()
	v.input.Placeholder = "Ask about this summary..."
	v.input.CharLimit = 2000
	return v
}

func (v *chatView) open(s models.Summary) {
	v.summary = s
	v.thread = flow.Thread{}
	v.input.SetValue("")
	v.input.Focus()
	v.refresh()
}

func (v *chatView) init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) resize(w, h int) {
	v.vp.Width = w - 2
	if h > 10 {
		v.vp.Height = h - 8
	}
	v.input.Width = w - 6
	v.refresh()
}

// refresh re-renders the transcript into the viewport and pins the
// latest message into view.
func (v *chatView) refresh() {
	var out string
	for _, m := range v.thread.Messages() {
		label := userMsgStyle.Render("you")
		style := userMsgStyle
		if m.Role == "assistant" {
			label = assistantMsgStyle.Render("lectura")
			style = assistantMsgStyle
		}
		out += label + dimStyle.Render(" "+m.Timestamp.Format("15:04")) + "\n"
		out += style.Render(lipgloss.NewStyle().Width(v.vp.Width).Render(m.Content)) + "\n\n"
	}
	if v.thread.Awaiting() {
		out += dimStyle.Render("thinking...") + "\n"
	}
	v.vp.SetContent(out)
	v.vp.GotoBottom()
}

func (v *chatView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return a.navigate(scrSummaries)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return cmd
	case "enter":
		content := v.input.Value()
		if !v.thread.Send(content, time.Now()) {
			return nil
		}
		v.input.SetValue("")
		v.refresh()
		return a.askQuestionCmd(v.summary.ID, content, v.thread.History())
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *chatView) view(a *App) string {
	head := titleStyle.Render("Chat") + dimStyle.Render("  "+v.summary.Title)
	body := head + "\n\n" + v.vp.View() + "\n\n" + v.input.View() + "\n"
	return body + keyHint("enter", "send", "pgup/pgdn", "scroll", "esc", "back")
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
)

// confirmState is the yes/no gate in front of destructive actions. The
// modal itself holds no async state: the caller supplies the command
// to run on confirm, keeps the confirm control disabled while that
// single call is in flight, and closes the modal once it resolves.
type confirmState struct {
	title   string
	prompt  string
	action  func() tea.Cmd
	trigger flow.Trigger
}

func newConfirm(title, prompt string, action func() tea.Cmd) *confirmState {
	return &confirmState{title: title, prompt: prompt, action: action}
}

// update handles modal keys. It reports whether the modal should stay
// open alongside any command it started.
func (c *confirmState) update(msg tea.KeyMsg) (open bool, cmd tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if !c.trigger.Fire() {
			return true, nil
		}
		return true, c.action()
	case "n", "esc":
		if c.trigger.InFlight() {
			// The delete is already running; the modal closes when it
			// resolves.
			return true, nil
		}
		return false, nil
	}
	return true, nil
}

func (c *confirmState) view() string {
	body := titleStyle.Render(c.title) + "\n\n" + c.prompt + "\n\n"
	if c.trigger.InFlight() {
		body += dimStyle.Render("working...")
	} else {
		body += keyHint("y", "confirm", "n", "cancel")
	}
	return modalStyle.Render(body)
}

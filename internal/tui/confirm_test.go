package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestConfirm_ConfirmFiresActionOnce(t *testing.T) {
	calls := 0
	c := newConfirm("Delete Set?", "This cannot be undone.", func() tea.Cmd {
		calls++
		return nil
	})

	open, _ := c.update(key("y"))
	if !open {
		t.Fatal("modal should stay open while the delete runs")
	}
	// Second confirm while in flight is a no-op.
	c.update(key("y"))
	c.update(key("enter"))

	if calls != 1 {
		t.Fatalf("expected exactly 1 action invocation, got %d", calls)
	}
}

func TestConfirm_CancelClosesWhenIdle(t *testing.T) {
	c := newConfirm("Delete?", "sure?", func() tea.Cmd { return nil })
	open, cmd := c.update(key("n"))
	if open {
		t.Fatal("cancel should close an idle modal")
	}
	if cmd != nil {
		t.Fatal("cancel should not start any command")
	}
}

func TestConfirm_CancelIgnoredWhileInFlight(t *testing.T) {
	c := newConfirm("Delete?", "sure?", func() tea.Cmd { return nil })
	c.update(key("y"))

	open, _ := c.update(key("esc"))
	if !open {
		t.Fatal("modal must stay open until the in-flight delete resolves")
	}
}

func TestConfirm_OtherKeysIgnored(t *testing.T) {
	c := newConfirm("Delete?", "sure?", func() tea.Cmd { return nil })
	open, cmd := c.update(key("x"))
	if !open || cmd != nil {
		t.Fatal("unrelated keys should leave the modal untouched")
	}
}

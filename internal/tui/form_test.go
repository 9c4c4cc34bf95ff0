package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestForm_ValidationFailureReleasesTrigger(t *testing.T) {
	calls := 0
	f := newForm("Generate",
		func(values []string) (tea.Cmd, string) {
			calls++
			return nil, "count must be positive"
		},
		textField("Count", "", "-3"),
	)

	f.update(key("enter"))
	if f.errText == "" {
		t.Fatal("expected a validation error to surface on the form")
	}
	if f.trigger.InFlight() {
		t.Fatal("trigger must be released when nothing was sent")
	}

	// The form stays editable and can submit again.
	f.update(key("enter"))
	if calls != 2 {
		t.Fatalf("expected 2 submit attempts, got %d", calls)
	}
}

func TestForm_SecondEnterIgnoredWhileInFlight(t *testing.T) {
	calls := 0
	f := newForm("Generate",
		func(values []string) (tea.Cmd, string) {
			calls++
			return func() tea.Msg { return nil }, ""
		},
		textField("Title", "", "ok"),
	)

	f.update(key("enter"))
	f.update(key("enter"))
	if calls != 1 {
		t.Fatalf("expected exactly 1 submission while in flight, got %d", calls)
	}

	f.done()
	f.update(key("enter"))
	if calls != 2 {
		t.Fatalf("expected a new submission after resolution, got %d", calls)
	}
}

func TestForm_ChoiceFieldCycles(t *testing.T) {
	f := newForm("Options",
		func(values []string) (tea.Cmd, string) { return nil, "" },
		choiceField("Difficulty", "easy", "medium", "hard"),
	)

	f.update(tea.KeyMsg{Type: tea.KeyRight})
	f.update(tea.KeyMsg{Type: tea.KeyRight})
	if got := f.values()[0]; got != "hard" {
		t.Fatalf("expected hard after two rights, got %q", got)
	}
	f.update(tea.KeyMsg{Type: tea.KeyRight})
	if got := f.values()[0]; got != "easy" {
		t.Fatalf("expected wraparound to easy, got %q", got)
	}
	f.update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := f.values()[0]; got != "hard" {
		t.Fatalf("expected left to wrap back to hard, got %q", got)
	}
}

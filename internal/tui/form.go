package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
)

// formField is one line of a form: either free text or a fixed set of
// choices cycled with the arrow keys.
type formField struct {
	label   string
	kind    fieldKind
	input   textinput.Model
	choices []string
	choice  int
}

func textField(label, placeholder, value string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.CharLimit = 256
	return formField{label: label, kind: fieldText, input: in}
}

func choiceField(label string, choices ...string) formField {
	return formField{label: label, kind: fieldChoice, choices: choices}
}

// formView is the shared input surface for uploads, link submissions
// and generation options. Local validation runs before any remote
// call; the submit callback returns the command to run, and the form's
// trigger keeps it at most once in flight.
type formView struct {
	title   string
	fields  []formField
	focus   int
	trigger flow.Trigger
	submit  func(values []string) (tea.Cmd, string)
	errText string
}

func newForm(title string, submit func(values []string) (tea.Cmd, string), fields ...formField) *formView {
	f := &formView{title: title, fields: fields, submit: submit}
	if len(f.fields) > 0 && f.fields[0].kind == fieldText {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *formView) values() []string {
	out := make([]string, len(f.fields))
	for i, fl := range f.fields {
		if fl.kind == fieldText {
			out[i] = fl.input.Value()
		} else {
			out[i] = fl.choices[fl.choice]
		}
	}
	return out
}

func (f *formView) setFocus(i int) {
	for j := range f.fields {
		if f.fields[j].kind == fieldText {
			f.fields[j].input.Blur()
		}
	}
	f.focus = i
	if f.fields[i].kind == fieldText {
		f.fields[i].input.Focus()
	}
}

func (f *formView) update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % len(f.fields))
			return nil
		case "shift+tab", "up":
			f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
			return nil
		case "left", "right":
			fl := &f.fields[f.focus]
			if fl.kind == fieldChoice {
				n := len(fl.choices)
				if keyMsg.String() == "right" {
					fl.choice = (fl.choice + 1) % n
				} else {
					fl.choice = (fl.choice - 1 + n) % n
				}
				return nil
			}
		case "enter":
			if !f.trigger.Fire() {
				return nil
			}
			cmd, errText := f.submit(f.values())
			if errText != "" {
				// Validation failure: nothing was sent, the form stays
				// editable.
				f.errText = errText
				f.trigger.Done()
				return nil
			}
			f.errText = ""
			return cmd
		}
	}

	if f.fields[f.focus].kind == fieldText {
		var cmd tea.Cmd
		f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
		return cmd
	}
	return nil
}

// done releases the trigger after the submit command resolved, whether
// it succeeded or failed.
func (f *formView) done() {
	f.trigger.Done()
}

func (f *formView) view() string {
	body := titleStyle.Render(f.title) + "\n\n"
	for i, fl := range f.fields {
		cursor := "  "
		if i == f.focus {
			cursor = footerKeyStyle.Render("> ")
		}
		switch fl.kind {
		case fieldText:
			body += cursor + dimStyle.Render(fl.label+": ") + fl.input.View() + "\n"
		case fieldChoice:
			body += cursor + dimStyle.Render(fl.label+": ") + rowStyle.Render("< "+fl.choices[fl.choice]+" >") + "\n"
		}
	}
	if f.errText != "" {
		body += "\n" + errorStyle.Render(f.errText)
	}
	if f.trigger.InFlight() {
		body += "\n" + dimStyle.Render("working...")
	} else {
		body += "\n" + keyHint("tab", "next field", "enter", "submit", "esc", "cancel")
	}
	return modalStyle.Render(body)
}

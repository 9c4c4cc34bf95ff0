package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

// loginView is the full-screen auth surface, switching between sign-in
// and registration.
type loginView struct {
	registering bool
	name        textinput.Model
	email       textinput.Model
	password    textinput.Model
	focus       int
	trigger     flow.Trigger
	errText     string
}

func newLoginView() *loginView {
	v := &loginView{}
	v.name = textinput.New()
	v.name.Placeholder = "Ada Lovelace"
	v.name.CharLimit = 128
	v.email = textinput.New()
	v.email.Placeholder = "you@example.com"
	v.email.CharLimit = 254
	v.password = textinput.New()
	v.password.EchoMode = textinput.EchoPassword
	v.password.EchoCharacter = '•'
	v.password.CharLimit = 128
	v.email.Focus()
	return v
}

func (v *loginView) init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) reset() {
	v.name.SetValue("")
	v.email.SetValue("")
	v.password.SetValue("")
	v.errText = ""
	v.setFocus(0)
}

func (v *loginView) done() {
	v.trigger.Done()
}

func (v *loginView) fields() []*textinput.Model {
	if v.registering {
		return []*textinput.Model{&v.name, &v.email, &v.password}
	}
	return []*textinput.Model{&v.email, &v.password}
}

func (v *loginView) setFocus(i int) {
	fields := v.fields()
	for _, f := range fields {
		f.Blur()
	}
	v.focus = i
	fields[i].Focus()
}

func (v *loginView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	if v.trigger.InFlight() {
		return nil
	}

	switch msg.String() {
	case "tab", "down":
		v.setFocus((v.focus + 1) % len(v.fields()))
		return nil
	case "shift+tab", "up":
		n := len(v.fields())
		v.setFocus((v.focus - 1 + n) % n)
		return nil
	case "ctrl+r":
		v.registering = !v.registering
		v.errText = ""
		v.setFocus(0)
		return nil
	case "enter":
		return v.submit(a)
	}

	f := v.fields()[v.focus]
	var cmd tea.Cmd
	*f, cmd = f.Update(msg)
	return cmd
}

func (v *loginView) submit(a *App) tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()
	if email == "" || password == "" {
		v.errText = "Email and password are required"
		return nil
	}
	if v.registering && strings.TrimSpace(v.name.Value()) == "" {
		v.errText = "Name is required"
		return nil
	}
	if !v.trigger.Fire() {
		return nil
	}
	v.errText = ""
	if v.registering {
		return a.registerCmd(models.RegisterRequest{
			FullName: strings.TrimSpace(v.name.Value()),
			Email:    email,
			Password: password,
		})
	}
	return a.loginCmd(models.LoginRequest{Email: email, Password: password})
}

func (v *loginView) view(a *App) string {
	title := "Sign in"
	if v.registering {
		title = "Create account"
	}
	body := titleStyle.Render("Lectura") + "  " + activeTabStyle.Render(title) + "\n\n"

	labels := []string{"Email", "Password"}
	fields := v.fields()
	if v.registering {
		labels = []string{"Name", "Email", "Password"}
	}
	for i, f := range fields {
		cursor := "  "
		if i == v.focus {
			cursor = footerKeyStyle.Render("> ")
		}
		body += cursor + dimStyle.Render(labels[i]+": ") + f.View() + "\n"
	}

	if v.errText != "" {
		body += "\n" + errorStyle.Render(v.errText)
	}
	if v.trigger.InFlight() {
		body += "\n" + dimStyle.Render("signing in...")
	} else {
		other := "register"
		if v.registering {
			other = "sign in"
		}
		body += "\n" + keyHint("enter", "submit", "ctrl+r", other, "ctrl+c", "quit")
	}
	return body
}

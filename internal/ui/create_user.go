package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	createFocusLogin = iota
	createFocusPassword
	createFocusRepeat
	createFocusCreate
	createFocusBack
	createFocusCount
)

// CreateUserScreen collects a login and password twice. Accounts are not
// stored; both buttons return to the login screen.
type CreateUserScreen struct {
	focus  focusRing
	fields [3]*textField
}

func NewCreateUserScreen() *CreateUserScreen {
	s := &CreateUserScreen{focus: focusRing{n: createFocusCount}}
	s.fields[createFocusLogin] = newTextField("Login", 32)
	s.fields[createFocusPassword] = newTextField("Password", 64)
	s.fields[createFocusRepeat] = newTextField("Repeat", 64)
	s.fields[createFocusPassword].masked = true
	s.fields[createFocusRepeat].masked = true
	return s
}

func (s *CreateUserScreen) Init(context.Context) {
	s.focus.pos = createFocusLogin
	for _, f := range s.fields {
		f.reset()
	}
}

func (s *CreateUserScreen) activeField() *textField {
	if s.focus.pos < len(s.fields) {
		return s.fields[s.focus.pos]
	}
	return nil
}

func (s *CreateUserScreen) HandleAction(_ context.Context, a Action) Result {
	switch a.Kind {
	case ActQuit:
		return quit()
	case ActCancel:
		return goTo(ScreenLogin)
	case ActFocusNext, ActNavDown, ActNavRight:
		s.focus.next()
	case ActFocusPrev, ActNavUp, ActNavLeft:
		s.focus.prev()
	case ActActivate:
		switch s.focus.pos {
		case createFocusCreate, createFocusBack:
			return goTo(ScreenLogin)
		default:
			s.focus.next()
		}
	case ActInputChar:
		if f := s.activeField(); f != nil {
			f.insert(a.Char)
		}
	case ActBackspace:
		if f := s.activeField(); f != nil {
			f.backspace()
		}
	}
	return stay()
}

func (s *CreateUserScreen) View(width, height int) string {
	var b strings.Builder
	for i, f := range s.fields {
		b.WriteString(f.render(s.focus.pos == i, 12))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		button("Create", s.focus.pos == createFocusCreate),
		"  ",
		button("Back", s.focus.pos == createFocusBack)))

	body := titleStyle.Render("Create New User") + "\n\n" + b.String()
	footer := hintStyle.Render("tab focus · enter select · esc back · ctrl+q quit")
	return centered(width, height, panelStyle.Render(body)+"\n"+footer)
}

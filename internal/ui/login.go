package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	loginFocusUser = iota
	loginFocusPassword
	loginFocusLogin
	loginFocusCreateUser
	loginFocusCount
)

// LoginScreen picks a profile and asks for a password. There is no account
// store; any password is accepted.
type LoginScreen struct {
	focus        focusRing
	users        []string
	selected     int
	dropdownOpen bool
	password     *textField
}

func NewLoginScreen(users []string) *LoginScreen {
	pw := newTextField("Password", 64)
	pw.masked = true
	return &LoginScreen{
		focus:    focusRing{n: loginFocusCount},
		users:    users,
		password: pw,
	}
}

func (s *LoginScreen) Init(context.Context) {}

// SelectedUser returns the highlighted profile name, or "" with no profiles.
func (s *LoginScreen) SelectedUser() string {
	if s.selected < 0 || s.selected >= len(s.users) {
		return ""
	}
	return s.users[s.selected]
}

func (s *LoginScreen) HandleAction(_ context.Context, a Action) Result {
	switch a.Kind {
	case ActQuit:
		return quit()
	case ActCancel:
		s.dropdownOpen = false
	case ActFocusNext:
		// focus stays on the dropdown while it is open
		if !s.dropdownOpen {
			s.focus.next()
		}
	case ActFocusPrev:
		if !s.dropdownOpen {
			s.focus.prev()
		}
	case ActNavUp:
		if s.dropdownOpen && s.selected > 0 {
			s.selected--
		}
	case ActNavDown:
		if s.dropdownOpen && s.selected+1 < len(s.users) {
			s.selected++
		}
	case ActActivate:
		return s.activate()
	case ActInputChar:
		if s.focus.pos == loginFocusPassword {
			s.password.insert(a.Char)
		}
	case ActBackspace:
		if s.focus.pos == loginFocusPassword {
			s.password.backspace()
		}
	}
	return stay()
}

func (s *LoginScreen) activate() Result {
	switch s.focus.pos {
	case loginFocusUser:
		s.dropdownOpen = !s.dropdownOpen
	case loginFocusPassword, loginFocusLogin:
		s.password.reset()
		return goTo(ScreenDashboard)
	case loginFocusCreateUser:
		return goTo(ScreenCreateUser)
	}
	return stay()
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	userLabel := s.SelectedUser()
	if userLabel == "" {
		userLabel = "Select user"
	}
	arrow := "▼"
	if s.dropdownOpen {
		arrow = "▲"
	}
	userStyle := fieldStyle
	if s.focus.pos == loginFocusUser {
		userStyle = focusedFieldStyle
	}
	b.WriteString(labelStyle.Width(10).Render("Username") + userStyle.Render(userLabel+" "+arrow))
	b.WriteString("\n")

	if s.dropdownOpen {
		for i, u := range s.users {
			line := "  " + u
			if i == s.selected {
				line = selectedRowStyle.Render(line)
			}
			b.WriteString(strings.Repeat(" ", 10) + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.password.render(s.focus.pos == loginFocusPassword, 10))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		button("Login", s.focus.pos == loginFocusLogin),
		"   ",
		button("Create User", s.focus.pos == loginFocusCreateUser)))

	body := titleStyle.Render("tui-money") + "\n\n" + b.String()
	footer := hintStyle.Render("tab focus · enter select · ctrl+q quit")
	return centered(width, height, panelStyle.Render(body)+"\n"+footer)
}

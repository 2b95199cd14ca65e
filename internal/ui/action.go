package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind enumerates the user intents a screen can receive.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActQuit
	ActGo
	ActFocusNext
	ActFocusPrev
	ActActivate
	ActCancel
	ActInputChar
	ActBackspace
	ActNavUp
	ActNavDown
	ActNavLeft
	ActNavRight
)

var actionNames = map[ActionKind]string{
	ActNone:      "none",
	ActQuit:      "quit",
	ActGo:        "go",
	ActFocusNext: "focus_next",
	ActFocusPrev: "focus_prev",
	ActActivate:  "activate",
	ActCancel:    "cancel",
	ActInputChar: "input_char",
	ActBackspace: "backspace",
	ActNavUp:     "nav_up",
	ActNavDown:   "nav_down",
	ActNavLeft:   "nav_left",
	ActNavRight:  "nav_right",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action is a decoded input event. Screen is set for ActGo, Char for
// ActInputChar.
type Action struct {
	Kind   ActionKind
	Screen ScreenID
	Char   rune
}

func Quit() Action               { return Action{Kind: ActQuit} }
func Go(id ScreenID) Action      { return Action{Kind: ActGo, Screen: id} }
func FocusNext() Action          { return Action{Kind: ActFocusNext} }
func FocusPrev() Action          { return Action{Kind: ActFocusPrev} }
func Activate() Action           { return Action{Kind: ActActivate} }
func Cancel() Action             { return Action{Kind: ActCancel} }
func InputChar(r rune) Action    { return Action{Kind: ActInputChar, Char: r} }
func Backspace() Action          { return Action{Kind: ActBackspace} }
func Nav(kind ActionKind) Action { return Action{Kind: kind} }
func NoAction() Action           { return Action{Kind: ActNone} }

// Type expands s into one InputChar action per rune.
func Type(s string) []Action {
	out := make([]Action, 0, len(s))
	for _, r := range s {
		out = append(out, InputChar(r))
	}
	return out
}

// FromKeyMsg maps a terminal key press to an Action.
func FromKeyMsg(msg tea.KeyMsg) Action {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlQ:
		return Quit()
	case tea.KeyTab:
		return FocusNext()
	case tea.KeyShiftTab:
		return FocusPrev()
	case tea.KeyUp:
		return Nav(ActNavUp)
	case tea.KeyDown:
		return Nav(ActNavDown)
	case tea.KeyLeft:
		return Nav(ActNavLeft)
	case tea.KeyRight:
		return Nav(ActNavRight)
	case tea.KeyEnter:
		return Activate()
	case tea.KeyEsc:
		return Cancel()
	case tea.KeyBackspace:
		return Backspace()
	case tea.KeySpace:
		if msg.Alt {
			return NoAction()
		}
		return InputChar(' ')
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return NoAction()
		}
		return InputChar(msg.Runes[0])
	}
	return NoAction()
}

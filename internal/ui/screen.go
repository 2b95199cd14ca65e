package ui

import (
	"context"
)

// ScreenID tags the screen the shell is showing.
type ScreenID int

const (
	ScreenLogin ScreenID = iota
	ScreenCreateUser
	ScreenDashboard
	ScreenEntryForm
)

func (id ScreenID) String() string {
	switch id {
	case ScreenLogin:
		return "login"
	case ScreenCreateUser:
		return "create_user"
	case ScreenDashboard:
		return "dashboard"
	case ScreenEntryForm:
		return "entry_form"
	}
	return "unknown"
}

type ResultKind int

const (
	Stay ResultKind = iota
	QuitApp
	Navigate
)

// Result is what a screen asks the shell to do after handling an action.
type Result struct {
	Kind   ResultKind
	Screen ScreenID
}

func stay() Result            { return Result{Kind: Stay} }
func quit() Result            { return Result{Kind: QuitApp} }
func goTo(id ScreenID) Result { return Result{Kind: Navigate, Screen: id} }

// Screen is one view of the shell. HandleAction is the only method allowed
// to change state; View renders the current state.
type Screen interface {
	// Init runs every time the screen becomes active.
	Init(ctx context.Context)
	HandleAction(ctx context.Context, a Action) Result
	View(width, height int) string
}

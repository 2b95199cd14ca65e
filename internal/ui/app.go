package ui

import (
	"context"

	"tuimoney/internal/core"
	"tuimoney/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultProfiles are offered on the login screen.
var DefaultProfiles = []string{"alice", "bob", "charlie"}

// App is the shell: it owns every screen, tracks the active one and applies
// the results screens return. It implements tea.Model.
type App struct {
	ctx    context.Context
	logger *log.Logger

	active   ScreenID
	screens  map[ScreenID]Screen
	quitting bool

	width, height int

	login      *LoginScreen
	createUser *CreateUserScreen
	dashboard  *DashboardScreen
	entryForm  *EntryFormScreen
}

var _ tea.Model = (*App)(nil)

// NewApp builds the shell on the login screen. ctx is passed to every
// storage call made while handling input.
func NewApp(ctx context.Context, svc EntryService, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Discard()
	}
	a := &App{
		ctx:        ctx,
		logger:     logger.WithComponent(log.ComponentUI),
		login:      NewLoginScreen(DefaultProfiles),
		createUser: NewCreateUserScreen(),
		dashboard:  NewDashboardScreen(svc),
	}
	a.entryForm = NewEntryFormScreen(svc, func(e core.Entry) {
		a.dashboard.EntrySaved(e)
	})
	a.screens = map[ScreenID]Screen{
		ScreenLogin:      a.login,
		ScreenCreateUser: a.createUser,
		ScreenDashboard:  a.dashboard,
		ScreenEntryForm:  a.entryForm,
	}
	a.active = ScreenLogin
	a.login.Init(ctx)
	return a
}

// Active returns the screen being shown.
func (a *App) Active() ScreenID { return a.active }

// Quitting reports whether the shell has been asked to exit.
func (a *App) Quitting() bool { return a.quitting }

func (a *App) Login() *LoginScreen           { return a.login }
func (a *App) CreateUser() *CreateUserScreen { return a.createUser }
func (a *App) Dashboard() *DashboardScreen   { return a.dashboard }
func (a *App) EntryForm() *EntryFormScreen   { return a.entryForm }

// Apply feeds one action to the active screen and performs the transition
// it asks for. It returns true once the shell should exit.
func (a *App) Apply(act Action) bool {
	if a.quitting {
		return true
	}
	if act.Kind == ActGo {
		a.switchTo(act.Screen)
		return a.quitting
	}

	res := a.screens[a.active].HandleAction(a.ctx, act)
	switch res.Kind {
	case QuitApp:
		a.quitting = true
		a.logger.InfoContext(a.ctx, "Quit requested", log.FieldScreen, a.active.String())
	case Navigate:
		a.switchTo(res.Screen)
	}
	return a.quitting
}

// ApplyAll applies actions in order and stops at the first that quits.
func (a *App) ApplyAll(acts ...Action) bool {
	for _, act := range acts {
		if a.Apply(act) {
			return true
		}
	}
	return a.quitting
}

func (a *App) switchTo(id ScreenID) {
	s, ok := a.screens[id]
	if !ok {
		a.logger.WarnContext(a.ctx, "Unknown screen", log.FieldScreen, id.String())
		return
	}
	a.logger.DebugContext(a.ctx, "Switching screen",
		log.FieldOperation, log.OpNavigate,
		"from", a.active.String(),
		log.FieldScreen, id.String())
	a.active = id
	s.Init(a.ctx)
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.Apply(FromKeyMsg(msg)) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.screens[a.active].View(a.width, a.height)
}

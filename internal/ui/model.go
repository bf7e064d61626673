package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/services"
)

type uiState int

const (
	stateLogin uiState = iota
	stateRegister
	stateList
	stateForm
	stateConfirmingDelete
	stateHelp
)

// Model is the root Bubble Tea model. It owns the state machine
// between the auth screens, the list and the dialogs, and translates
// action messages into engine and service calls.
//
// When the server rejects the stored credential the model drops back
// to the login screen but keeps the engine's stale record set, so the
// last table contents reappear immediately after re-authentication.
type Model struct {
	applicationForm *Dialog
	auth            *services.AuthService
	confirmDelete   *Dialog
	confirmValue    bool
	devMode         bool
	engine          *services.ViewEngine
	errorManager    *ErrorManager
	height          int
	helpScreen      *Dialog
	keys            KeyMap
	list            *ApplicationList
	loginForm       *Dialog
	pendingDelete   domain.Application
	registerForm    *Dialog
	sessions        *services.SessionService
	state           uiState
	width           int
}

// NewModel creates the root model. It starts on the list when a
// session was rehydrated from disk and on the login screen otherwise.
func NewModel(
	auth *services.AuthService,
	engine *services.ViewEngine,
	sessions *services.SessionService,
	errorClearDelay time.Duration,
	devMode bool,
) *Model {
	errorManager := NewErrorManager(errorClearDelay)
	keys := NewKeyMap()

	m := &Model{
		auth:         auth,
		devMode:      devMode,
		engine:       engine,
		errorManager: errorManager,
		keys:         keys,
		list:         NewApplicationList(engine, errorManager, keys, devMode),
		sessions:     sessions,
	}

	if _, ok := sessions.Current(); ok {
		m.state = stateList
	} else {
		m.state = stateLogin
		m.loginForm = NewDialog("Sign in", NewLoginForm(auth), devMode)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	if m.state == stateLogin {
		return m.loginForm.Init()
	}
	return tea.Batch(m.refreshCmd(), m.list.SetLoading(true))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		m.state = stateHelp
		m.helpScreen = NewDialog("Help", NewHelpScreen(m.keys), m.devMode)
		return m, m.helpScreen.Init()

	case RefreshMsg:
		return m, tea.Batch(m.refreshCmd(), m.list.SetLoading(true))

	case LogoutMsg:
		m.auth.Logout(context.Background())
		return m, m.toLogin()

	case NewApplicationMsg:
		m.applicationForm = NewDialog("New Application",
			NewApplicationForm(m.engine, "", domain.Draft{}), m.devMode)
		m.state = stateForm
		return m, m.applicationForm.Init()

	case EditApplicationMsg:
		m.applicationForm = NewDialog("Edit Application",
			NewApplicationForm(m.engine, msg.Application.ID, domain.DraftFromApplication(msg.Application)), m.devMode)
		m.state = stateForm
		return m, m.applicationForm.Init()

	case DeleteApplicationMsg:
		return m, m.startDelete(msg.Application)

	case authDoneMsg:
		return m, m.handleAuthDone(msg)

	case refreshDoneMsg:
		cmd := m.list.SetLoading(false)
		return m, tea.Batch(cmd, m.handleRemoteError(msg.err))

	case saveDoneMsg:
		return m, m.handleSaveDone(msg)

	case deleteDoneMsg:
		cmd := m.list.SetLoading(false)
		return m, tea.Batch(cmd, m.handleRemoteError(msg.err))
	}

	return m.updateState(msg)
}

// updateState forwards messages to the component owning the current state.
func (m *Model) updateState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		return m.updateLogin(msg)
	case stateRegister:
		return m.updateRegister(msg)
	case stateForm:
		return m.updateForm(msg)
	case stateConfirmingDelete:
		return m.updateConfirmDelete(msg)
	case stateHelp:
		return m.updateHelp(msg)
	default:
		_, cmd := m.list.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+r" {
		m.state = stateRegister
		m.registerForm = NewDialog("Create account", NewRegisterForm(m.auth), m.devMode)
		return m, m.registerForm.Init()
	}

	_, cmd := m.loginForm.Update(msg)
	if form, ok := m.loginForm.Content().(*LoginForm); ok && form.Cancelled() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.registerForm.Update(msg)
	if form, ok := m.registerForm.Content().(*RegisterForm); ok && form.Cancelled() {
		return m, m.toLogin()
	}
	return m, cmd
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.applicationForm.Update(msg)
	if form, ok := m.applicationForm.Content().(*ApplicationForm); ok && form.Cancelled() {
		m.state = stateList
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.confirmDelete.Update(msg)

	form, ok := m.confirmDelete.Content().(*huh.Form)
	if !ok || form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = stateList
	if !m.confirmValue {
		m.engine.CancelDelete()
		return m, nil
	}
	return m, tea.Batch(m.confirmDeleteCmd(), m.list.SetLoading(true))
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)
	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Dismissed {
		m.state = stateList
	}
	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateLogin:
		return m.loginForm.View() + m.errorLine()
	case stateRegister:
		return m.registerForm.View() + m.errorLine()
	case stateForm:
		return m.applicationForm.View() + m.errorLine()
	case stateConfirmingDelete:
		return m.confirmDelete.View()
	case stateHelp:
		return m.helpScreen.View()
	default:
		return m.list.View()
	}
}

func (m *Model) errorLine() string {
	if !m.errorManager.HasError() {
		return ""
	}
	width := m.width
	if width == 0 {
		width = 80
	}
	return "\n" + formatErrorForDisplay(m.errorManager.GetError(), width)
}

// startDelete marks the record for deletion and opens the confirm
// dialog. Nothing is sent to the server until the dialog is accepted.
func (m *Model) startDelete(app domain.Application) tea.Cmd {
	m.engine.RequestDelete(app.ID)
	m.pendingDelete = app
	m.confirmValue = false

	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q at %s?", app.JobTitle, app.CompanyName)).
				Description("This cannot be undone").
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.confirmValue),
		),
	)
	m.confirmDelete = NewDialog("Delete Application", confirm, m.devMode)
	m.state = stateConfirmingDelete
	return m.confirmDelete.Init()
}

// toLogin drops to the login screen. The engine keeps its records so
// the previous table shows again right after re-authentication.
func (m *Model) toLogin() tea.Cmd {
	m.state = stateLogin
	m.loginForm = NewDialog("Sign in", NewLoginForm(m.auth), m.devMode)
	return m.loginForm.Init()
}

func (m *Model) handleAuthDone(msg authDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.errorManager.SetError(msg.err)
		// Re-create the form so the user can correct and retry.
		if m.state == stateRegister {
			m.registerForm = NewDialog("Create account", NewRegisterForm(m.auth), m.devMode)
			return tea.Batch(m.registerForm.Init(), m.errorManager.ClearAfterDelay())
		}
		m.loginForm = NewDialog("Sign in", NewLoginForm(m.auth), m.devMode)
		return tea.Batch(m.loginForm.Init(), m.errorManager.ClearAfterDelay())
	}

	logging.Logger.Info("Authenticated", "email", msg.session.User.Email)
	m.engine.SessionRenewed()
	m.errorManager.ClearError()
	m.state = stateList
	return tea.Batch(m.refreshCmd(), m.list.SetLoading(true))
}

// handleSaveDone routes a save result. A rejected save re-opens the
// form pre-filled with the submitted draft so nothing the user typed
// is lost; only a successful save returns to the list.
func (m *Model) handleSaveDone(msg saveDoneMsg) tea.Cmd {
	if msg.err == nil {
		m.state = stateList
		return nil
	}
	if errors.Is(msg.err, domain.ErrSessionExpired) {
		return m.toLogin()
	}

	m.errorManager.SetError(msg.err)
	if form, ok := m.applicationForm.Content().(*ApplicationForm); ok {
		title := "New Application"
		if form.id != "" {
			title = "Edit Application"
		}
		m.applicationForm = NewDialog(title,
			NewApplicationForm(m.engine, form.id, form.draft()), m.devMode)
		m.state = stateForm
		return tea.Batch(m.applicationForm.Init(), m.errorManager.ClearAfterDelay())
	}

	m.state = stateList
	return m.errorManager.ClearAfterDelay()
}

// handleRemoteError routes an operation result: session expiry drops
// to login, other failures show in the banner and auto-clear.
func (m *Model) handleRemoteError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrSessionExpired) {
		return m.toLogin()
	}
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) refreshCmd() tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return refreshDoneMsg{err: engine.Refresh(context.Background())}
	}
}

func (m *Model) confirmDeleteCmd() tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return deleteDoneMsg{err: engine.ConfirmDelete(context.Background())}
	}
}

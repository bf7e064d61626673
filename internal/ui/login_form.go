package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/services"
)

// LoginForm collects credentials and exchanges them for a session.
// Field-level validation runs before any network call; the request
// itself runs as a tea.Cmd so the UI stays responsive.
type LoginForm struct {
	Completed bool
	auth      *services.AuthService
	cancelled bool
	email     string
	form      *huh.Form
	password  string
}

// NewLoginForm creates a login form bound to the auth service.
func NewLoginForm(auth *services.AuthService) *LoginForm {
	lf := &LoginForm{auth: auth}

	lf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&lf.email).
				Validate(validationFunc(domain.ValidateEmail)),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&lf.password).
				Validate(validationFunc(domain.ValidatePassword)),
		),
	)

	return lf
}

func (lf *LoginForm) Init() tea.Cmd {
	return lf.form.Init()
}

func (lf *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			lf.cancelled = true
			lf.Completed = true
			return lf, nil
		}
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}

	if lf.form.State == huh.StateCompleted && !lf.Completed {
		lf.Completed = true
		return lf, lf.loginCmd()
	}

	return lf, cmd
}

func (lf *LoginForm) View() string {
	if lf.form != nil {
		return lf.form.View()
	}
	return ""
}

// Cancelled reports whether the user backed out of the form.
func (lf *LoginForm) Cancelled() bool {
	return lf.cancelled
}

// loginCmd performs the credential exchange and reports the outcome.
func (lf *LoginForm) loginCmd() tea.Cmd {
	email, password := lf.email, lf.password
	auth := lf.auth
	return func() tea.Msg {
		session, err := auth.Login(context.Background(), email, password)
		if err != nil {
			logging.Logger.Warn("Login failed", "email", email, "error", err)
		}
		return authDoneMsg{session: session, err: err}
	}
}

// validationFunc adapts a message-returning rule to huh's Validate signature.
func validationFunc(rule func(string) string) func(string) error {
	return func(s string) error {
		if msg := rule(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

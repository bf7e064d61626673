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

// RegisterForm collects the details for a new account. On success the
// returned session is installed directly, so registration logs in.
type RegisterForm struct {
	Completed bool
	auth      *services.AuthService
	cancelled bool
	confirm   string
	email     string
	form      *huh.Form
	fullName  string
	password  string
}

// NewRegisterForm creates a registration form bound to the auth service.
func NewRegisterForm(auth *services.AuthService) *RegisterForm {
	rf := &RegisterForm{auth: auth}

	rf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&rf.fullName).
				Validate(validationFunc(domain.ValidateFullName)),
			huh.NewInput().
				Title("Email").
				Value(&rf.email).
				Validate(validationFunc(domain.ValidateEmail)),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&rf.password).
				Validate(validationFunc(domain.ValidatePassword)),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&rf.confirm).
				Validate(func(s string) error {
					if s != rf.password {
						return errors.New("passwords do not match")
					}
					return nil
				}),
		),
	)

	return rf
}

func (rf *RegisterForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *RegisterForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			rf.cancelled = true
			rf.Completed = true
			return rf, nil
		}
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}

	if rf.form.State == huh.StateCompleted && !rf.Completed {
		rf.Completed = true
		return rf, rf.registerCmd()
	}

	return rf, cmd
}

func (rf *RegisterForm) View() string {
	if rf.form != nil {
		return rf.form.View()
	}
	return ""
}

// Cancelled reports whether the user backed out of the form.
func (rf *RegisterForm) Cancelled() bool {
	return rf.cancelled
}

// registerCmd creates the account and reports the outcome.
func (rf *RegisterForm) registerCmd() tea.Cmd {
	fullName, email, password := rf.fullName, rf.email, rf.password
	auth := rf.auth
	return func() tea.Msg {
		session, err := auth.Register(context.Background(), fullName, email, password)
		if err != nil {
			logging.Logger.Warn("Registration failed", "email", email, "error", err)
		}
		return authDoneMsg{session: session, err: err}
	}
}

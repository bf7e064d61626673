package cmd

import (
	"context"
	"errors"
	"fmt"

	"jobtrack/internal/domain"
)

// RegisterCmd creates an account and stores the resulting session
type RegisterCmd struct {
	FullName string `arg:"" help:"Display name for the account"`
	Email    string `arg:"" help:"Account email"`
	Password string `help:"Account password (prompted when omitted)" short:"p"`
}

// Run performs the registration
func (r *RegisterCmd) Run(cli *CLI) error {
	password := r.Password
	if password == "" {
		var err error
		password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	if msg := domain.ValidateFullName(r.FullName); msg != "" {
		return errors.New(msg)
	}
	if msg := domain.ValidateEmail(r.Email); msg != "" {
		return errors.New(msg)
	}
	if msg := domain.ValidatePassword(password); msg != "" {
		return errors.New(msg)
	}

	session, err := cli.Container.AuthService.Register(context.Background(), r.FullName, r.Email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Account created, logged in as %s <%s>\n", session.User.FullName, session.User.Email)
	return nil
}

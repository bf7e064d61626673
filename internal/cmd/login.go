package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"jobtrack/internal/domain"
)

// LoginCmd exchanges credentials for a session and stores it locally
type LoginCmd struct {
	Email    string `arg:"" help:"Account email"`
	Password string `help:"Account password (prompted when omitted)" short:"p"`
}

// Run performs the login
func (l *LoginCmd) Run(cli *CLI) error {
	password := l.Password
	if password == "" {
		var err error
		password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	// Validate locally before any request goes out.
	if msg := domain.ValidateEmail(l.Email); msg != "" {
		return errors.New(msg)
	}
	if msg := domain.ValidatePassword(password); msg != "" {
		return errors.New(msg)
	}

	session, err := cli.Container.AuthService.Login(context.Background(), l.Email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Logged in as %s <%s>\n", session.User.FullName, session.User.Email)
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

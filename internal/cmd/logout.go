package cmd

import (
	"context"
	"fmt"
)

// LogoutCmd discards the stored session
type LogoutCmd struct{}

// Run performs the logout. Logging out when no session is stored is
// not an error.
func (l *LogoutCmd) Run(cli *CLI) error {
	cli.Container.AuthService.Logout(context.Background())
	fmt.Println("Logged out")
	return nil
}

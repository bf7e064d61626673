package cmd

import (
	"errors"
	"fmt"
)

// WhoamiCmd shows the logged-in account
type WhoamiCmd struct{}

// Run prints the stored identity without contacting the server
func (w *WhoamiCmd) Run(cli *CLI) error {
	session, ok := cli.Container.SessionService.Current()
	if !ok {
		return errors.New("not logged in")
	}
	fmt.Printf("%s <%s>\n", session.User.FullName, session.User.Email)
	return nil
}

package cmd

import (
	"time"

	"jobtrack/internal/server"
)

// ServeCmd serves the TUI over SSH so the tracker can run on one
// machine and be used from anywhere with a key
type ServeCmd struct {
	AuthorizedKeys  string `help:"Path to the authorized_keys file" default:"~/.ssh/authorized_keys"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Address to listen on" default:"0.0.0.0"`
	PageSize        int    `help:"Applications per page (5, 10 or 25)" default:"0"`
	Port            string `help:"Port to listen on" default:"2323"`
}

// Run starts the SSH server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	pageSize, err := cli.resolvePageSize(s.PageSize)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(server.Options{
		APIURL:          cli.APIURL,
		AuthorizedKeys:  s.AuthorizedKeys,
		Dev:             s.Dev,
		ErrorClearDelay: time.Duration(cli.resolveErrorClearDelay(s.ErrorClearDelay)) * time.Second,
		Host:            s.Host,
		PageSize:        pageSize,
		Port:            s.Port,
	})
	if err != nil {
		return err
	}
	return srv.Start()
}

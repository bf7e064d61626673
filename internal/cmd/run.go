package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/logging"
	"jobtrack/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	PageSize        int  `help:"Applications per page (5, 10 or 25)" default:"0"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	pageSize, err := cli.resolvePageSize(r.PageSize)
	if err != nil {
		return err
	}
	errorClearDelay := cli.resolveErrorClearDelay(r.ErrorClearDelay)

	logging.Logger.Info("Starting jobtrack TUI",
		"api_url", cli.APIURL,
		"page_size", pageSize)

	engine := cli.Container.NewViewEngine(pageSize, nil)
	model := ui.NewModel(
		cli.Container.AuthService,
		engine,
		cli.Container.SessionService,
		time.Duration(errorClearDelay)*time.Second,
		r.Dev,
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

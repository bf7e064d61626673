package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"jobtrack/internal/config"
	"jobtrack/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `help:"Base URL of the jobtrack API" env:"JOBTRACK_API_URL" name:"api-url"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the jobtrack TUI (default)" default:"1"`
	Login    LoginCmd    `cmd:"login" help:"Log in and store the session"`
	Register RegisterCmd `cmd:"register" help:"Create an account and log in"`
	Logout   LogoutCmd   `cmd:"logout" help:"Discard the stored session"`
	Whoami   WhoamiCmd   `cmd:"whoami" help:"Show the logged-in account"`
	List     ListCmd     `cmd:"list" help:"Print applications without starting the TUI"`
	Stats    StatsCmd    `cmd:"stats" help:"Show per-status application counts"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults. A flag
// still at its default is overridable by settings unless the env var
// is set (kong already applied env vars to flags that declare one).
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("JOBTRACK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("JOBTRACK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.APIURL == "" && c.settings.APIURL != "" {
			c.APIURL = c.settings.APIURL
		}
	}
	if c.APIURL == "" {
		c.APIURL = config.DefaultAPIURL
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container after logging is initialized so the GORM logger
	// never sees a nil logging.Logger.
	container, err := NewContainer(c.APIURL)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// resolvePageSize applies the flag > settings.json > default precedence
// for the page size and rejects values outside the supported set.
func (c *CLI) resolvePageSize(flag int) (int, error) {
	size := flag
	if size == 0 && c.settings != nil && c.settings.PageSize != nil {
		size = *c.settings.PageSize
	}
	if size == 0 {
		size = config.DefaultPageSize
	}
	if !config.IsValidPageSize(size) {
		return 0, fmt.Errorf("invalid page size %d (supported: %v)", size, config.PageSizes)
	}
	return size, nil
}

// resolveErrorClearDelay applies the flag > settings.json precedence.
func (c *CLI) resolveErrorClearDelay(flag int) int {
	if flag == 10 && c.settings != nil && c.settings.ErrorClearDelay != nil {
		return *c.settings.ErrorClearDelay
	}
	return flag
}

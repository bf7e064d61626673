package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"jobtrack/internal/adapters/api"
	"jobtrack/internal/adapters/storage"
	"jobtrack/internal/config"
	"jobtrack/internal/logging"
	"jobtrack/internal/services"
	"jobtrack/internal/ui"
)

// Options configures the SSH server.
type Options struct {
	APIURL          string
	AuthorizedKeys  string
	Dev             bool
	ErrorClearDelay time.Duration
	Host            string
	PageSize        int
	Port            string
}

// Server serves the tracker TUI over SSH. Each connection gets its own
// session store and view engine, so users never share credentials or
// filter state.
type Server struct {
	opts       Options
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options) (*Server, error) {
	s := &Server{opts: opts}

	sshDir := filepath.Join(config.GetHome(), "ssh")
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	authorizedKeys := config.ExpandPath(opts.AuthorizedKeys)

	// Middleware executes in reverse order (last to first).
	wishServer, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%s", opts.Host, opts.Port)),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			fingerprint := keyFingerprint(key)
			authorized := isKeyAuthorized(key, authorizedKeys)
			if authorized {
				logging.Logger.Info("SSH key authenticated",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			} else {
				logging.Logger.Warn("Unauthorized SSH key",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			}
			return authorized
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start starts the SSH server and blocks until shutdown
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	address := fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port)
	logging.Logger.Info("Starting SSH server", "address", address)
	fmt.Printf("SSH server listening on %s\n", address)

	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil {
			logging.Logger.Error("SSH server error", "error", err)
		}
	}()

	<-done
	logging.Logger.Info("Shutting down SSH server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

// sessionModel wraps ui.Model to close the per-connection repository
// when the program quits.
type sessionModel struct {
	*ui.Model
	repo      *storage.SQLiteRepository
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("Failed to close repository for SSH session",
				"error", err, "session_id", s.sessionID)
		}
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a Bubble Tea model for each SSH connection.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// Per-user database so concurrent clients keep separate sessions.
	dbPath := filepath.Join(filepath.Dir(config.GetDBPath()), fmt.Sprintf("jobtrack-%s.db", sess.User()))
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err, "session_id", sessionID)
		fmt.Fprintln(sess, "Failed to open database")
		return nil, nil
	}

	sessions := services.NewSessionService(context.Background(), repo)
	client := api.NewClient(s.opts.APIURL, sessions, nil)
	auth := services.NewAuthService(client, sessions)
	engine := services.NewViewEngine(client, sessions, s.opts.PageSize, nil)

	model := &sessionModel{
		Model:     ui.NewModel(auth, engine, sessions, s.opts.ErrorClearDelay, s.opts.Dev),
		repo:      repo,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

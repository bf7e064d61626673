package cmd

import (
	"context"

	"jobtrack/internal/adapters/api"
	"jobtrack/internal/adapters/storage"
	"jobtrack/internal/config"
	"jobtrack/internal/ports"
	"jobtrack/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	APIClient      *api.Client
	AuthService    *services.AuthService
	SessionService *services.SessionService

	// Internal - for cleanup only
	sessionRepo ports.SessionRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The session is rehydrated from the local database here, so every
// command starts with the same view of the stored credential.
func NewContainer(apiURL string) (*Container, error) {
	sessionRepo, err := storage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	sessionService := services.NewSessionService(context.Background(), sessionRepo)
	apiClient := api.NewClient(apiURL, sessionService, nil)
	authService := services.NewAuthService(apiClient, sessionService)

	return &Container{
		APIClient:      apiClient,
		AuthService:    authService,
		SessionService: sessionService,
		sessionRepo:    sessionRepo,
	}, nil
}

// NewViewEngine creates a view engine over the container's API client.
// Engines are per command run, not shared.
func (c *Container) NewViewEngine(pageSize int, onReauth func()) *services.ViewEngine {
	return services.NewViewEngine(c.APIClient, c.SessionService, pageSize, onReauth)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.sessionRepo != nil {
		return c.sessionRepo.Close()
	}
	return nil
}

package services

import (
	"context"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/ports"
)

// AuthService logs users in and out, keeping the session store in sync
type AuthService struct {
	client   ports.AuthClient
	sessions *SessionService
}

// NewAuthService creates a new AuthService
func NewAuthService(client ports.AuthClient, sessions *SessionService) *AuthService {
	return &AuthService{client: client, sessions: sessions}
}

// Login exchanges credentials for a session and stores it
func (a *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.sessions.Set(ctx, *session)
	logging.Logger.Info("Logged in", "user", session.User.Email)
	return session, nil
}

// Register creates an account and stores its initial session
func (a *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.Session, error) {
	session, err := a.client.Register(ctx, fullName, email, password)
	if err != nil {
		return nil, err
	}
	a.sessions.Set(ctx, *session)
	logging.Logger.Info("Registered", "user", session.User.Email)
	return session, nil
}

// Logout clears the stored session
func (a *AuthService) Logout(ctx context.Context) {
	a.sessions.Clear(ctx)
	logging.Logger.Info("Logged out")
}

package services

import (
	"context"
	"sync"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/ports"
)

// SessionService owns the process-wide session singleton. The
// in-memory value is authoritative for the current process lifetime;
// the repository only provides durability across restarts, and its
// failures are logged and swallowed.
type SessionService struct {
	current *domain.Session
	mu      sync.RWMutex
	repo    ports.SessionRepository
}

// NewSessionService creates the service and rehydrates the persisted
// session exactly once. A load failure starts the process logged out.
func NewSessionService(ctx context.Context, repo ports.SessionRepository) *SessionService {
	s := &SessionService{repo: repo}

	session, err := repo.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to rehydrate session", "error", err)
		return s
	}
	if session != nil {
		s.current = session
		logging.Logger.Debug("Session rehydrated", "user", session.User.Email)
	}
	return s
}

// Set replaces any existing session; no merge semantics
func (s *SessionService) Set(ctx context.Context, session domain.Session) {
	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	if err := s.repo.Save(ctx, session); err != nil {
		logging.Logger.Warn("Failed to persist session", "error", err)
	}
}

// Clear removes the session. Idempotent; safe to call when already empty.
func (s *SessionService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		logging.Logger.Warn("Failed to delete persisted session", "error", err)
	}
}

// Current returns the active session, if any
func (s *SessionService) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

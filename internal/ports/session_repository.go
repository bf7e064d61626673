package ports

import (
	"context"

	"jobtrack/internal/domain"
)

// SessionRepository persists the bearer token and minimal identity so
// a session survives a process restart. The in-memory session owned by
// the session service stays authoritative; durability failures are
// logged and swallowed by callers.
type SessionRepository interface {
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context) error
	Close() error
}

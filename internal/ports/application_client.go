package ports

import (
	"context"

	"jobtrack/internal/domain"
)

// ApplicationClient is the typed facade over the remote CRUD and stats
// endpoints. Every method requires an active session; implementations
// fail with domain.ErrUnauthorized before any network attempt when no
// session exists, and translate credential rejections to
// domain.ErrSessionExpired without clearing the session themselves.
type ApplicationClient interface {
	ListAll(ctx context.Context) ([]domain.Application, error)
	Create(ctx context.Context, draft domain.Draft) (*domain.Application, error)
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
	StatusCounts(ctx context.Context) (domain.StatusCounts, error)
}

// AuthClient exchanges credentials for a session. No session required.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, fullName, email, password string) (*domain.Session, error)
}

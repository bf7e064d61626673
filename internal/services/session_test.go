package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/domain"
)

// fakeRepo is an in-memory ports.SessionRepository for tests.
type fakeRepo struct {
	mu        sync.Mutex
	deleteErr error
	deletes   int
	loadErr   error
	saveErr   error
	saves     int
	session   *domain.Session
}

func (r *fakeRepo) Load(ctx context.Context) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.session, nil
}

func (r *fakeRepo) Save(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.session = &session
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.session = nil
	return nil
}

func (r *fakeRepo) Close() error { return nil }

func testSession() domain.Session {
	return domain.Session{
		Token: "tok-123",
		User: domain.User{
			Email:    "ana@example.com",
			FullName: "Ana Silva",
			ID:       "u1",
		},
	}
}

func TestNewSessionService_RehydratesFromRepository(t *testing.T) {
	stored := testSession()
	repo := &fakeRepo{session: &stored}

	svc := NewSessionService(context.Background(), repo)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, stored, current)
}

func TestNewSessionService_StartsLoggedOutWhenRepoEmpty(t *testing.T) {
	svc := NewSessionService(context.Background(), &fakeRepo{})

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestNewSessionService_LoadFailureStartsLoggedOut(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("disk on fire")}

	svc := NewSessionService(context.Background(), repo)

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestSet_ReplacesAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewSessionService(context.Background(), repo)

	svc.Set(context.Background(), testSession())

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "tok-123", current.Token)
	require.NotNil(t, repo.session)
	assert.Equal(t, "tok-123", repo.session.Token)
}

func TestSet_KeepsInMemorySessionWhenPersistFails(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	svc := NewSessionService(context.Background(), repo)

	svc.Set(context.Background(), testSession())

	_, ok := svc.Current()
	assert.True(t, ok, "in-memory session must stay authoritative")
}

func TestClear_IsIdempotent(t *testing.T) {
	stored := testSession()
	repo := &fakeRepo{session: &stored}
	svc := NewSessionService(context.Background(), repo)

	svc.Clear(context.Background())
	svc.Clear(context.Background())

	_, ok := svc.Current()
	assert.False(t, ok)
	assert.Nil(t, repo.session)
}

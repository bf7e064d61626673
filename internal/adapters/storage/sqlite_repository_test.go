package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/domain"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "jobtrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func sampleSession() domain.Session {
	return domain.Session{
		Token: "tok-abc",
		User: domain.User{
			Email:    "ana@example.com",
			FullName: "Ana Silva",
			ID:       "u1",
		},
	}
}

func TestLoad_EmptyDatabaseReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session, "absence of a session is not an error")
}

func TestSaveAndLoad_RoundTripsIdentity(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), sampleSession()))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sampleSession(), *loaded)
}

func TestSave_SecondSaveReplacesFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleSession()))

	replacement := sampleSession()
	replacement.Token = "tok-new"
	replacement.User.Email = "bruno@example.com"
	require.NoError(t, repo.Save(ctx, replacement))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-new", loaded.Token)
	assert.Equal(t, "bruno@example.com", loaded.User.Email)
}

func TestDelete_RemovesStoredSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleSession()))
	require.NoError(t, repo.Delete(ctx))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDelete_EmptyDatabaseIsNoError(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.Delete(context.Background()))
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobtrack.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, sampleSession()))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-abc", loaded.Token)
}

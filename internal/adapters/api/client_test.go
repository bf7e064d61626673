package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/domain"
)

// staticSessions is a SessionSource with a fixed session (or none).
type staticSessions struct {
	session *domain.Session
}

func (s *staticSessions) Current() (domain.Session, bool) {
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

func loggedIn() *staticSessions {
	return &staticSessions{session: &domain.Session{
		Token: "tok-123",
		User:  domain.User{Email: "ana@example.com", FullName: "Ana Silva", ID: "u1"},
	}}
}

func TestListAll_SendsBearerAndDecodesWireFormat(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/applications", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"_id": "abc123",
			"companyName": "Acme Corp",
			"jobTitle": "Go Engineer",
			"jobType": "Full-time",
			"location": "Lisbon",
			"dateApplied": "2026-08-15T00:00:00.000Z",
			"status": "Applied",
			"meetingUrls": ["https://meet.example.com/x"]
		}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	apps, err := client.ListAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, apps, 1)
	assert.Equal(t, "abc123", apps[0].ID)
	assert.Equal(t, "Acme Corp", apps[0].CompanyName)
	assert.Equal(t, domain.StatusApplied, apps[0].Status)
	assert.Equal(t, domain.JobTypeFullTime, apps[0].JobType)
	assert.Equal(t, 2026, apps[0].DateApplied.Year())
	assert.Equal(t, []string{"https://meet.example.com/x"}, apps[0].MeetingURLs)
}

func TestDoAuthed_NoSessionFailsBeforeNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &staticSessions{}, nil)
	_, err := client.ListAll(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, requests, "no request may leave the client without a session")
}

func TestTranslateFailure_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"jwt expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	_, err := client.ListAll(context.Background())

	require.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestTranslateFailure_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Application not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	err := client.Delete(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTranslateFailure_ServerMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"company name too long"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	_, err := client.ListAll(context.Background())

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.Status)
	assert.Equal(t, "company name too long", reqErr.Message)
	assert.Equal(t, "company name too long", reqErr.Error())
}

func TestTranslateFailure_BodyWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	_, err := client.ListAll(context.Background())

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "request failed with status 500", reqErr.Error())
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, loggedIn(), nil)
	_, err := client.ListAll(context.Background())

	require.ErrorIs(t, err, domain.ErrNetworkUnavailable)
}

func TestCreate_SubmitsDraftPayload(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/applications", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"new1","companyName":"Initech","jobTitle":"Go Engineer",
			"jobType":"Contract","location":"Porto","dateApplied":"2026-08-15","status":"Applied"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	app, err := client.Create(context.Background(), domain.Draft{
		CompanyName: "Initech",
		DateApplied: "2026-08-15",
		JobTitle:    "Go Engineer",
		JobType:     domain.JobTypeContract,
		Location:    "Porto",
		Status:      domain.StatusApplied,
	})

	require.NoError(t, err)
	assert.Equal(t, "new1", app.ID)
	assert.Equal(t, "Initech", payload["companyName"])
	assert.Equal(t, "2026-08-15", payload["dateApplied"])
	assert.NotContains(t, payload, "_id", "draft carries no ID")
}

func TestUpdate_PatchesByID(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/applications/abc123", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"abc123","companyName":"Acme Corp","jobTitle":"Staff Engineer",
			"jobType":"Full-time","location":"Lisbon","dateApplied":"2026-08-15","status":"Interview"}`))
	}))
	defer srv.Close()

	status := domain.StatusInterview
	client := NewClient(srv.URL, loggedIn(), nil)
	app, err := client.Update(context.Background(), "abc123", domain.Patch{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusInterview, app.Status)
	assert.Equal(t, "Interview", payload["status"])
	assert.NotContains(t, payload, "companyName", "nil patch fields are omitted")
}

func TestStatusCounts_DecodesStatsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/applications/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"Applied","count":3},{"_id":"Interview","count":1}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedIn(), nil)
	counts, err := client.StatusCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, counts[domain.StatusApplied])
	assert.Equal(t, 1, counts[domain.StatusInterview])
	assert.Zero(t, counts[domain.StatusRejected])
}

func TestLogin_ReturnsSessionWithoutNeedingOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ana@example.com", creds["email"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"fresh-token","user":{"id":"u1","fullName":"Ana Silva","email":"ana@example.com"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &staticSessions{}, nil)
	session, err := client.Login(context.Background(), "ana@example.com", "longenough")

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", session.Token)
	assert.Equal(t, "Ana Silva", session.User.FullName)
}

func TestRegister_SubmitsFullName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "Ana Silva", creds["fullName"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t","user":{"id":"u2","fullName":"Ana Silva","email":"ana@example.com"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &staticSessions{}, nil)
	session, err := client.Register(context.Background(), "Ana Silva", "ana@example.com", "longenough")

	require.NoError(t, err)
	assert.Equal(t, "u2", session.User.ID)
}

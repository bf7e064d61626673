package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/ports"
)

const defaultTimeout = 15 * time.Second

// SessionSource provides the current session for bearer auth.
// Implemented by services.SessionService; injected rather than read
// from global state so the client stays testable in isolation.
type SessionSource interface {
	Current() (domain.Session, bool)
}

// Client talks HTTP/JSON to the remote application store
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionSource
}

// Verify interface compliance at compile time
var (
	_ ports.ApplicationClient = (*Client)(nil)
	_ ports.AuthClient        = (*Client)(nil)
)

// NewClient creates an API client for the given base URL.
// httpClient may be nil to use a default with a request timeout.
func NewClient(baseURL string, sessions SessionSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
	}
}

// ListAll fetches the complete record set. No server-side filtering is
// assumed; all filtering happens client-side.
func (c *Client) ListAll(ctx context.Context) ([]domain.Application, error) {
	var dtos []applicationDTO
	if err := c.doAuthed(ctx, http.MethodGet, "/applications", nil, &dtos); err != nil {
		return nil, err
	}
	apps := make([]domain.Application, 0, len(dtos))
	for _, dto := range dtos {
		apps = append(apps, dto.toDomain())
	}
	return apps, nil
}

// Create submits a draft; the server assigns the ID and normalizes the
// date to its canonical form.
func (c *Client) Create(ctx context.Context, draft domain.Draft) (*domain.Application, error) {
	var dto applicationDTO
	if err := c.doAuthed(ctx, http.MethodPost, "/applications", draftDTOFrom(draft), &dto); err != nil {
		return nil, err
	}
	app := dto.toDomain()
	return &app, nil
}

// Update patches a subset of fields; nil patch fields are left
// unchanged server-side.
func (c *Client) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Application, error) {
	var dto applicationDTO
	if err := c.doAuthed(ctx, http.MethodPatch, "/applications/"+id, patchDTOFrom(patch), &dto); err != nil {
		return nil, err
	}
	app := dto.toDomain()
	return &app, nil
}

// Delete removes a record. Deleting a nonexistent ID is a NotFound
// failure, not a no-op.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doAuthed(ctx, http.MethodDelete, "/applications/"+id, nil, nil)
}

// StatusCounts fetches the aggregate counts. Not guaranteed to be
// transactionally consistent with a concurrent ListAll.
func (c *Client) StatusCounts(ctx context.Context) (domain.StatusCounts, error) {
	var dtos []statusCountDTO
	if err := c.doAuthed(ctx, http.MethodGet, "/applications/stats", nil, &dtos); err != nil {
		return nil, err
	}
	counts := make(domain.StatusCounts, len(dtos))
	for _, dto := range dtos {
		counts[domain.Status(dto.Status)] = dto.Count
	}
	return counts, nil
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponseDTO
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

// Register creates an account and returns its initial session
func (c *Client) Register(ctx context.Context, fullName, email, password string) (*domain.Session, error) {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	var resp authResponseDTO
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

// doAuthed performs a bearer-authenticated request. Absence of a local
// session fails with ErrUnauthorized before any network attempt.
func (c *Client) doAuthed(ctx context.Context, method, path string, body, out any) error {
	session, ok := c.sessions.Current()
	if !ok {
		return domain.ErrUnauthorized
	}
	return c.do(ctx, method, path, session.Token, body, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Request transport failure", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrNetworkUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.translateFailure(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// translateFailure maps non-2xx responses onto the error taxonomy.
// The client classifies only; clearing the session on expiry is the
// caller's decision.
func (c *Client) translateFailure(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		logging.Logger.Info("Credential rejected by server", "method", method, "path", path)
		return domain.ErrSessionExpired
	case http.StatusNotFound:
		return domain.ErrNotFound
	}

	message := serverMessage(raw)
	logging.Logger.Warn("Request rejected",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"message", message)
	return &domain.RequestError{Status: resp.StatusCode, Message: message}
}

// serverMessage extracts the "message" field from an error body, if any
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}

package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized means no session exists locally; raised before
	// any network attempt.
	ErrUnauthorized = errors.New("not logged in")

	// ErrSessionExpired means the server rejected the credential.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotFound means the operation targeted a nonexistent record.
	ErrNotFound = errors.New("application not found")

	// ErrNetworkUnavailable means the server could not be reached.
	ErrNetworkUnavailable = errors.New("network unavailable")
)

// RequestError is a server-side rejection that is none of the
// distinguished failures above. Message comes from the response body
// when the server provided one.
type RequestError struct {
	Message string
	Status  int
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ValidationError carries per-field validation failures. It never
// reaches the network layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

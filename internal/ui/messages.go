package ui

import "jobtrack/internal/domain"

// Action messages emitted by the list component. The Model handles
// them in its update loop and decides which dialog or command to run.

// QuitMsg requests quitting the application.
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen.
type ShowHelpMsg struct{}

// NewApplicationMsg requests opening the form to create a record.
type NewApplicationMsg struct{}

// EditApplicationMsg requests opening the form pre-filled with a record.
type EditApplicationMsg struct {
	Application domain.Application
}

// DeleteApplicationMsg requests marking a record for deletion. The
// actual removal only happens after the confirm dialog is accepted.
type DeleteApplicationMsg struct {
	Application domain.Application
}

// RefreshMsg requests reloading records and counts from the server.
type RefreshMsg struct{}

// LogoutMsg requests discarding the session and returning to login.
type LogoutMsg struct{}

// Async results of commands run against the remote store.

// refreshDoneMsg reports the outcome of a background refresh.
type refreshDoneMsg struct {
	err error
}

// saveDoneMsg reports the outcome of a create or update.
type saveDoneMsg struct {
	err error
}

// deleteDoneMsg reports the outcome of a confirmed deletion.
type deleteDoneMsg struct {
	err error
}

// authDoneMsg reports the outcome of a login or register attempt.
type authDoneMsg struct {
	session *domain.Session
	err     error
}

package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"jobtrack/internal/domain"
	"jobtrack/internal/logging"
	"jobtrack/internal/services"
)

// ApplicationForm edits a job-application draft, for both creating a
// new record (empty id) and editing an existing one. Every field is
// validated locally before the draft is ever sent to the server; the
// save itself runs as a tea.Cmd through the view engine, which also
// triggers the follow-up refresh.
type ApplicationForm struct {
	Completed bool
	cancelled bool
	engine    *services.ViewEngine

	applicationURL string
	companyName    string
	dateApplied    string
	form           *huh.Form
	id             string
	jobTitle       string
	jobType        string
	location       string
	meetingURLs    string
	notes          string
	status         string
}

// NewApplicationForm creates a form pre-filled from draft. Pass an
// empty id and a zero draft for the create flow.
func NewApplicationForm(engine *services.ViewEngine, id string, draft domain.Draft) *ApplicationForm {
	af := &ApplicationForm{
		applicationURL: draft.ApplicationURL,
		companyName:    draft.CompanyName,
		dateApplied:    draft.DateApplied,
		engine:         engine,
		id:             id,
		jobTitle:       draft.JobTitle,
		jobType:        string(draft.JobType),
		location:       draft.Location,
		meetingURLs:    strings.Join(draft.MeetingURLs, "\n"),
		notes:          draft.Notes,
		status:         string(draft.Status),
	}
	if af.id == "" {
		if af.dateApplied == "" {
			af.dateApplied = time.Now().Format(domain.DateLayout)
		}
		if af.status == "" {
			af.status = string(domain.StatusApplied)
		}
		if af.jobType == "" {
			af.jobType = string(domain.JobTypeFullTime)
		}
	}

	jobTypeOptions := make([]huh.Option[string], len(domain.JobTypes))
	for i, t := range domain.JobTypes {
		jobTypeOptions[i] = huh.NewOption(string(t), string(t))
	}
	statusOptions := make([]huh.Option[string], len(domain.Statuses))
	for i, s := range domain.Statuses {
		statusOptions[i] = huh.NewOption(string(s), string(s))
	}

	af.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company").
				Value(&af.companyName).
				Validate(af.fieldValidator("companyName")),
			huh.NewInput().
				Title("Job title").
				Value(&af.jobTitle).
				Validate(af.fieldValidator("jobTitle")),
			huh.NewInput().
				Title("Location").
				Value(&af.location).
				Validate(af.fieldValidator("location")),
			huh.NewSelect[string]().
				Title("Job type").
				Options(jobTypeOptions...).
				Value(&af.jobType),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions...).
				Value(&af.status),
			huh.NewInput().
				Title("Date applied").
				Placeholder("YYYY-MM-DD").
				Value(&af.dateApplied).
				Validate(af.fieldValidator("dateApplied")),
			huh.NewInput().
				Title("Posting URL").
				Placeholder("https://...").
				Value(&af.applicationURL).
				Validate(af.fieldValidator("applicationUrl")),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Meeting links").
				Description("One URL per line").
				Value(&af.meetingURLs).
				Validate(af.fieldValidator("meetingUrls")),
			huh.NewText().
				Title("Notes").
				Value(&af.notes),
		),
	)

	return af
}

func (af *ApplicationForm) Init() tea.Cmd {
	return af.form.Init()
}

func (af *ApplicationForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			af.cancelled = true
			af.Completed = true
			return af, nil
		}
	}

	form, cmd := af.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		af.form = f
	}

	if af.form.State == huh.StateCompleted && !af.Completed {
		af.Completed = true
		return af, af.saveCmd()
	}

	return af, cmd
}

func (af *ApplicationForm) View() string {
	if af.form != nil {
		return af.form.View()
	}
	return ""
}

// Cancelled reports whether the user backed out of the form.
func (af *ApplicationForm) Cancelled() bool {
	return af.cancelled
}

// draft assembles the current field values into a domain draft.
func (af *ApplicationForm) draft() domain.Draft {
	return domain.Draft{
		ApplicationURL: strings.TrimSpace(af.applicationURL),
		CompanyName:    strings.TrimSpace(af.companyName),
		DateApplied:    strings.TrimSpace(af.dateApplied),
		JobTitle:       strings.TrimSpace(af.jobTitle),
		JobType:        domain.JobType(af.jobType),
		Location:       strings.TrimSpace(af.location),
		MeetingURLs:    splitLines(af.meetingURLs),
		Notes:          af.notes,
		Status:         domain.Status(af.status),
	}
}

// fieldValidator runs the full draft validation and surfaces only the
// message for one field, so each input reports its own rule.
func (af *ApplicationForm) fieldValidator(field string) func(string) error {
	return func(string) error {
		if msg, ok := domain.ValidateDraft(af.draft())[field]; ok {
			return errors.New(msg)
		}
		return nil
	}
}

// saveCmd pushes the draft to the server via the engine.
func (af *ApplicationForm) saveCmd() tea.Cmd {
	engine := af.engine
	id := af.id
	draft := af.draft()
	return func() tea.Msg {
		err := engine.Save(context.Background(), id, draft)
		if err != nil {
			logging.Logger.Warn("Save failed", "id", id, "error", err)
		}
		return saveDoneMsg{err: err}
	}
}

// splitLines breaks a textarea value into trimmed non-empty lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

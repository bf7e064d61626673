package domain

import "time"

// Status is the lifecycle label of an application
type Status string

const (
	StatusApplied    Status = "Applied"
	StatusInProgress Status = "In Progress"
	StatusInterview  Status = "Interview"
	StatusRejected   Status = "Rejected"
	StatusAccepted   Status = "Accepted"
)

// Statuses lists every valid status in display order
var Statuses = []Status{
	StatusApplied,
	StatusInProgress,
	StatusInterview,
	StatusRejected,
	StatusAccepted,
}

// JobType is the employment type of an application
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// JobTypes lists every valid job type in display order
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeInternship,
}

// IsValidStatus reports whether s is a member of the closed status set
func IsValidStatus(s Status) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidJobType reports whether t is a member of the closed job type set
func IsValidJobType(t JobType) bool {
	for _, v := range JobTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Application is a single job-application record (domain entity).
// ID is assigned by the remote store and immutable once set.
type Application struct {
	ApplicationURL string
	CompanyName    string
	DateApplied    time.Time
	ID             string
	JobTitle       string
	JobType        JobType
	Location       string
	MeetingURLs    []string
	Notes          string
	Status         Status
}

// Draft is an application as entered in the form, before the remote
// store has assigned an ID. DateApplied stays a string until validated.
type Draft struct {
	ApplicationURL string
	CompanyName    string
	DateApplied    string
	JobTitle       string
	JobType        JobType
	Location       string
	MeetingURLs    []string
	Notes          string
	Status         Status
}

// Patch is a partial update to an existing application. Nil fields
// are left unchanged by the remote store.
type Patch struct {
	ApplicationURL *string
	CompanyName    *string
	DateApplied    *time.Time
	JobTitle       *string
	JobType        *JobType
	Location       *string
	MeetingURLs    *[]string
	Notes          *string
	Status         *Status
}

// PatchFromDraft converts a validated draft into a full-field patch.
// The form always submits every editable field, so no field is nil.
func PatchFromDraft(d Draft) Patch {
	date, _ := time.Parse(DateLayout, d.DateApplied)
	urls := d.MeetingURLs
	return Patch{
		ApplicationURL: &d.ApplicationURL,
		CompanyName:    &d.CompanyName,
		DateApplied:    &date,
		JobTitle:       &d.JobTitle,
		JobType:        &d.JobType,
		Location:       &d.Location,
		MeetingURLs:    &urls,
		Notes:          &d.Notes,
		Status:         &d.Status,
	}
}

// DraftFromApplication pre-fills a draft for editing an existing record
func DraftFromApplication(app Application) Draft {
	return Draft{
		ApplicationURL: app.ApplicationURL,
		CompanyName:    app.CompanyName,
		DateApplied:    app.DateApplied.Format(DateLayout),
		JobTitle:       app.JobTitle,
		JobType:        app.JobType,
		Location:       app.Location,
		MeetingURLs:    app.MeetingURLs,
		Notes:          app.Notes,
		Status:         app.Status,
	}
}

// StatusCounts maps each status to its server-side aggregate count
type StatusCounts map[Status]int

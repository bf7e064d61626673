package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() Draft {
	return Draft{
		ApplicationURL: "https://jobs.example.com/123",
		CompanyName:    "Acme Corp",
		DateApplied:    "2026-08-15",
		JobTitle:       "Go Engineer",
		JobType:        JobTypeFullTime,
		Location:       "Lisbon",
		MeetingURLs:    []string{"https://meet.example.com/abc"},
		Notes:          "Referred by Ana",
		Status:         StatusApplied,
	}
}

func TestValidateDraft_CompleteDraftPasses(t *testing.T) {
	assert.Empty(t, ValidateDraft(completeDraft()))
}

func TestValidateDraft_RequiredFields(t *testing.T) {
	errs := ValidateDraft(Draft{})

	for _, field := range []string{"companyName", "jobTitle", "location", "jobType", "status", "dateApplied"} {
		assert.Contains(t, errs, field)
	}
	assert.NotContains(t, errs, "applicationUrl", "optional when empty")
	assert.NotContains(t, errs, "meetingUrls", "optional when empty")
	assert.NotContains(t, errs, "notes", "notes are unconstrained")
}

func TestValidateDraft_WhitespaceOnlyIsMissing(t *testing.T) {
	d := completeDraft()
	d.CompanyName = "   "

	errs := ValidateDraft(d)
	assert.Equal(t, "Company name is required", errs["companyName"])
}

func TestValidateDraft_RejectsUnknownEnumValues(t *testing.T) {
	d := completeDraft()
	d.JobType = "Freelance"
	d.Status = "Ghosted"

	errs := ValidateDraft(d)
	assert.Equal(t, "Invalid job type", errs["jobType"])
	assert.Equal(t, "Invalid status", errs["status"])
}

func TestValidateDraft_DateRules(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"missing", "", "Application date is required"},
		{"malformed", "15/08/2026", "Enter a valid date (YYYY-MM-DD)"},
		{"not a date", "soon", "Enter a valid date (YYYY-MM-DD)"},
		{"today", time.Now().Format(DateLayout), ""},
		{"tomorrow", time.Now().AddDate(0, 0, 1).Format(DateLayout), "Date cannot be in the future"},
		{"past", "2020-01-01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			d.DateApplied = tt.date

			errs := ValidateDraft(d)
			if tt.want == "" {
				assert.NotContains(t, errs, "dateApplied")
			} else {
				assert.Equal(t, tt.want, errs["dateApplied"])
			}
		})
	}
}

func TestValidateDraft_URLRules(t *testing.T) {
	d := completeDraft()
	d.ApplicationURL = "not a url"
	errs := ValidateDraft(d)
	assert.Equal(t, "Enter a valid URL", errs["applicationUrl"])

	d = completeDraft()
	d.ApplicationURL = "example.com/jobs"
	errs = ValidateDraft(d)
	assert.Contains(t, errs, "applicationUrl", "relative URLs are rejected")

	d = completeDraft()
	d.MeetingURLs = []string{"https://ok.example.com", "nope"}
	errs = ValidateDraft(d)
	assert.Equal(t, "Enter valid URLs", errs["meetingUrls"])
}

func TestValidateDraft_OnlyFirstViolationPerField(t *testing.T) {
	// Empty job type violates both "required" and "member of set";
	// only the required message may surface.
	errs := ValidateDraft(Draft{})
	assert.Equal(t, "Job type is required", errs["jobType"])
}

func TestValidationError_SortsFieldNames(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"location":    "Location is required",
		"companyName": "Company name is required",
	}}

	msg := err.Error()
	require.Contains(t, msg, "companyName")
	assert.Less(t, strings.Index(msg, "companyName"), strings.Index(msg, "location"))
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, "Email is required", ValidateEmail(" "))
	assert.Equal(t, "Enter a valid email", ValidateEmail("not-an-email"))
	assert.Empty(t, ValidateEmail("ana@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.Equal(t, "Password is required", ValidatePassword(""))
	assert.Equal(t, "Password should be at least 8 characters", ValidatePassword("short"))
	assert.Empty(t, ValidatePassword("longenough"))
}

func TestValidateFullName(t *testing.T) {
	assert.Equal(t, "Full name is required", ValidateFullName("  "))
	assert.Equal(t, "Name should be at least 2 characters", ValidateFullName("A"))
	assert.Empty(t, ValidateFullName("Ana"))
}

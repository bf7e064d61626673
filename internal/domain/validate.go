package domain

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the wire and form format for application dates
const DateLayout = "2006-01-02"

// ValidateDraft checks a draft against the field rules and returns a
// map of field name to error message. An empty map means the draft is
// valid. Only the first violated rule per field is reported.
func ValidateDraft(d Draft) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.CompanyName) == "" {
		errs["companyName"] = "Company name is required"
	}
	if strings.TrimSpace(d.JobTitle) == "" {
		errs["jobTitle"] = "Job title is required"
	}
	if strings.TrimSpace(d.Location) == "" {
		errs["location"] = "Location is required"
	}

	if d.JobType == "" {
		errs["jobType"] = "Job type is required"
	} else if !IsValidJobType(d.JobType) {
		errs["jobType"] = "Invalid job type"
	}

	if d.Status == "" {
		errs["status"] = "Status is required"
	} else if !IsValidStatus(d.Status) {
		errs["status"] = "Invalid status"
	}

	if msg := validateDateApplied(d.DateApplied); msg != "" {
		errs["dateApplied"] = msg
	}

	if d.ApplicationURL != "" && !IsValidURL(d.ApplicationURL) {
		errs["applicationUrl"] = "Enter a valid URL"
	}

	for _, u := range d.MeetingURLs {
		if u != "" && !IsValidURL(u) {
			errs["meetingUrls"] = "Enter valid URLs"
			break
		}
	}

	// Notes are unconstrained
	return errs
}

func validateDateApplied(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Application date is required"
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return "Enter a valid date (YYYY-MM-DD)"
	}
	today := time.Now()
	endOfToday := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, date.Location())
	if date.After(endOfToday) {
		return "Date cannot be in the future"
	}
	return ""
}

// IsValidURL reports whether s parses as an absolute URL
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

// ValidateEmail returns an error message for a login/register email
// field, or "" when valid.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "Enter a valid email"
	}
	return ""
}

// ValidatePassword returns an error message for a password field,
// or "" when valid.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if utf8.RuneCountInString(password) < 8 {
		return "Password should be at least 8 characters"
	}
	return ""
}

// ValidateFullName returns an error message for a registration name
// field, or "" when valid.
func ValidateFullName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Full name is required"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return "Name should be at least 2 characters"
	}
	return ""
}

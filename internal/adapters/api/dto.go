package api

import (
	"time"

	"jobtrack/internal/domain"
)

// applicationDTO is the wire shape of a record. The store keys records
// by "_id" and returns dates in RFC3339.
type applicationDTO struct {
	ID             string   `json:"_id"`
	CompanyName    string   `json:"companyName"`
	JobTitle       string   `json:"jobTitle"`
	JobType        string   `json:"jobType"`
	Location       string   `json:"location"`
	DateApplied    string   `json:"dateApplied"`
	Status         string   `json:"status"`
	ApplicationURL string   `json:"applicationUrl,omitempty"`
	MeetingURLs    []string `json:"meetingUrls,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

func (dto applicationDTO) toDomain() domain.Application {
	return domain.Application{
		ApplicationURL: dto.ApplicationURL,
		CompanyName:    dto.CompanyName,
		DateApplied:    parseWireDate(dto.DateApplied),
		ID:             dto.ID,
		JobTitle:       dto.JobTitle,
		JobType:        domain.JobType(dto.JobType),
		Location:       dto.Location,
		MeetingURLs:    dto.MeetingURLs,
		Notes:          dto.Notes,
		Status:         domain.Status(dto.Status),
	}
}

// parseWireDate accepts the server's canonical RFC3339 form and the
// plain date form submitted by drafts.
func parseWireDate(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	t, _ := time.Parse(domain.DateLayout, value)
	return t
}

// draftDTO is the create payload: a record minus its ID
type draftDTO struct {
	CompanyName    string   `json:"companyName"`
	JobTitle       string   `json:"jobTitle"`
	JobType        string   `json:"jobType"`
	Location       string   `json:"location"`
	DateApplied    string   `json:"dateApplied"`
	Status         string   `json:"status"`
	ApplicationURL string   `json:"applicationUrl,omitempty"`
	MeetingURLs    []string `json:"meetingUrls,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

func draftDTOFrom(d domain.Draft) draftDTO {
	return draftDTO{
		ApplicationURL: d.ApplicationURL,
		CompanyName:    d.CompanyName,
		DateApplied:    d.DateApplied,
		JobTitle:       d.JobTitle,
		JobType:        string(d.JobType),
		Location:       d.Location,
		MeetingURLs:    d.MeetingURLs,
		Notes:          d.Notes,
		Status:         string(d.Status),
	}
}

// patchDTO is the partial-update payload; omitted fields are left
// unchanged server-side.
type patchDTO struct {
	CompanyName    *string   `json:"companyName,omitempty"`
	JobTitle       *string   `json:"jobTitle,omitempty"`
	JobType        *string   `json:"jobType,omitempty"`
	Location       *string   `json:"location,omitempty"`
	DateApplied    *string   `json:"dateApplied,omitempty"`
	Status         *string   `json:"status,omitempty"`
	ApplicationURL *string   `json:"applicationUrl,omitempty"`
	MeetingURLs    *[]string `json:"meetingUrls,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
}

func patchDTOFrom(p domain.Patch) patchDTO {
	dto := patchDTO{
		ApplicationURL: p.ApplicationURL,
		CompanyName:    p.CompanyName,
		JobTitle:       p.JobTitle,
		Location:       p.Location,
		MeetingURLs:    p.MeetingURLs,
		Notes:          p.Notes,
	}
	if p.JobType != nil {
		jobType := string(*p.JobType)
		dto.JobType = &jobType
	}
	if p.Status != nil {
		status := string(*p.Status)
		dto.Status = &status
	}
	if p.DateApplied != nil {
		date := p.DateApplied.Format(domain.DateLayout)
		dto.DateApplied = &date
	}
	return dto
}

// statusCountDTO is one row of the stats endpoint response
type statusCountDTO struct {
	Status string `json:"_id"`
	Count  int    `json:"count"`
}

// authResponseDTO is the login/register response
type authResponseDTO struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"user"`
}

func (dto authResponseDTO) toSession() *domain.Session {
	return &domain.Session{
		Token: dto.Token,
		User: domain.User{
			Email:    dto.User.Email,
			FullName: dto.User.FullName,
			ID:       dto.User.ID,
		},
	}
}

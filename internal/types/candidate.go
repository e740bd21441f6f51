// Package types provides the wire and domain records exchanged with the
// TalentLoop platform API. All json tags follow the backend's snake_case
// convention; field names are the camelCase view the rest of the module works
// with.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Candidate represents a candidate account as returned by the backend.
type Candidate struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	TargetRoles    []string          `json:"target_roles"`
	University     string            `json:"university,omitempty"`
	Major          string            `json:"major,omitempty"`
	GraduationYear int               `json:"graduation_year,omitempty"`
	GPA            float64           `json:"gpa,omitempty"`
	Courses        []string          `json:"courses,omitempty"`
	GitHubUsername string            `json:"github_username,omitempty"`
	ResumeData     *ParsedResumeData `json:"resume_data,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// RegisterCandidateRequest is the registration payload for a new candidate.
type RegisterCandidateRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Phone       string   `json:"phone,omitempty" validate:"omitempty,e164"`
	TargetRoles []string `json:"target_roles,omitempty"`
}

// UpdateCandidateRequest is a partial update; nil fields are left untouched
// by the backend.
type UpdateCandidateRequest struct {
	Name           *string  `json:"name,omitempty"`
	Phone          *string  `json:"phone,omitempty" validate:"omitempty,e164"`
	TargetRoles    []string `json:"target_roles,omitempty"`
	University     *string  `json:"university,omitempty"`
	Major          *string  `json:"major,omitempty"`
	GraduationYear *int     `json:"graduation_year,omitempty"`
	GPA            *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	Courses        []string `json:"courses,omitempty"`
}

// LoginRequest is the login payload shared by candidates and employers.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResumeStatus reports whether a candidate has an uploaded resume on file.
type ResumeStatus struct {
	HasResume  bool       `json:"has_resume"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
	Filename   string     `json:"filename,omitempty"`
}

// SharingSettings controls the public candidate-profile-sharing feature. The
// share URL is derived client-side from the token.
type SharingSettings struct {
	Enabled  bool   `json:"enabled"`
	Token    string `json:"token,omitempty"`
	ShareURL string `json:"-"`
}

// Validate validates the RegisterCandidateRequest using the validator.
func (r *RegisterCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateCandidateRequest using the validator.
func (r *UpdateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

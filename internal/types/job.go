package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Vertical is an industry category a job belongs to. The set is owned by the
// backend; these constants cover the values the platform currently serves.
type Vertical string

const (
	VerticalSoftware   Vertical = "SOFTWARE"
	VerticalFinance    Vertical = "FINANCE"
	VerticalConsulting Vertical = "CONSULTING"
	VerticalMarketing  Vertical = "MARKETING"
	VerticalDesign     Vertical = "DESIGN"
)

// Job is a posting owned by an employer.
type Job struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Vertical     Vertical  `json:"vertical"`
	RoleType     string    `json:"role_type"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location,omitempty"`
	SalaryMin    *int      `json:"salary_min,omitempty"`
	SalaryMax    *int      `json:"salary_max,omitempty"`
	IsActive     bool      `json:"is_active"`
	EmployerID   uuid.UUID `json:"employer_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// JobList is one page of jobs plus the total match count for pagination.
type JobList struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

// CreateJobRequest is the payload for posting a new job.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Description  string   `json:"description" validate:"required"`
	Vertical     Vertical `json:"vertical" validate:"required"`
	RoleType     string   `json:"role_type" validate:"required"`
	Requirements []string `json:"requirements,omitempty"`
	Location     string   `json:"location,omitempty"`
	SalaryMin    *int     `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax    *int     `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
}

// UpdateJobRequest is a partial job update; nil fields are left untouched.
type UpdateJobRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Location     *string  `json:"location,omitempty"`
	SalaryMin    *int     `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax    *int     `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

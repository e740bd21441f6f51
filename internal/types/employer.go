package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Employer represents an employer account.
type Employer struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterEmployerRequest is the registration payload for a new employer.
type RegisterEmployerRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// UpdateEmployerRequest is a partial employer update.
type UpdateEmployerRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the RegisterEmployerRequest using the validator.
func (r *RegisterEmployerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateEmployerRequest using the validator.
func (r *UpdateEmployerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

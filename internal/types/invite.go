package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InviteToken is a shareable interview-invite link for a job. InviteURL is
// derived client-side from the configured link base URL; the wire payload
// carries only the token.
type InviteToken struct {
	Token     string     `json:"token"`
	JobID     uuid.UUID  `json:"job_id"`
	UsedCount int        `json:"used_count"`
	MaxUses   int        `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	InviteURL string     `json:"-"`
}

// CreateInviteRequest is the payload for minting a new invite token.
type CreateInviteRequest struct {
	JobID     uuid.UUID  `json:"job_id" validate:"required"`
	MaxUses   int        `json:"max_uses" validate:"gte=1"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Validate validates the CreateInviteRequest using the validator.
func (r *CreateInviteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

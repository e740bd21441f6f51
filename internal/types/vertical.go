package types

import (
	"time"

	"github.com/google/uuid"
)

// VerticalInfo describes one industry vertical and its role types.
type VerticalInfo struct {
	Vertical  Vertical `json:"vertical"`
	Label     string   `json:"label"`
	RoleTypes []string `json:"role_types"`
}

// VerticalProfileStatus is the state of a candidate's standing in a vertical.
type VerticalProfileStatus string

const (
	VerticalProfileActive  VerticalProfileStatus = "ACTIVE"
	VerticalProfileRetired VerticalProfileStatus = "RETIRED"
)

// VerticalProfile is the per-(candidate, vertical) interview standing. The
// backend guarantees at most one non-retired profile per vertical; the client
// only displays it. CanInterview is derived server-side from the attempt
// count and cooldown.
type VerticalProfile struct {
	ID             uuid.UUID             `json:"id"`
	Vertical       Vertical              `json:"vertical"`
	Status         VerticalProfileStatus `json:"status"`
	CurrentScore   *float64              `json:"current_score,omitempty"`
	BestScore      *float64              `json:"best_score,omitempty"`
	AttemptCount   int                   `json:"attempt_count"`
	NextEligibleAt *time.Time            `json:"next_eligible_at,omitempty"`
	CanInterview   bool                  `json:"can_interview"`
}

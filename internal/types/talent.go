package types

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the per-(employer, candidate) pipeline state. Transitions
// are validated by the backend; the client only requests them.
type MatchStatus string

const (
	MatchPending     MatchStatus = "PENDING"
	MatchContacted   MatchStatus = "CONTACTED"
	MatchInReview    MatchStatus = "IN_REVIEW"
	MatchShortlisted MatchStatus = "SHORTLISTED"
	MatchRejected    MatchStatus = "REJECTED"
	MatchHired       MatchStatus = "HIRED"
)

// TalentPoolCandidate is one row of the employer-facing browse list.
type TalentPoolCandidate struct {
	CandidateID  uuid.UUID   `json:"candidate_id"`
	Name         string      `json:"name"`
	Vertical     Vertical    `json:"vertical"`
	RoleType     string      `json:"role_type,omitempty"`
	BestScore    *float64    `json:"best_score,omitempty"`
	University   string      `json:"university,omitempty"`
	TargetRoles  []string    `json:"target_roles"`
	TopSkills    []string    `json:"top_skills"`
	MatchStatus  MatchStatus `json:"match_status,omitempty"`
	LastActiveAt *time.Time  `json:"last_active_at,omitempty"`
}

// TalentPoolPage is one page of the browse list plus the total count.
type TalentPoolPage struct {
	Candidates []TalentPoolCandidate `json:"candidates"`
	Total      int                   `json:"total"`
}

// TalentProfileDetail is the full employer-facing view of a candidate. Each
// section is independently optional: a section absent from the backend
// payload is a nil pointer, never a partially-populated struct.
type TalentProfileDetail struct {
	Profile        *TalentProfileSummary `json:"profile,omitempty"`
	Candidate      *CandidateSection     `json:"candidate,omitempty"`
	Completion     *CompletionStatus     `json:"completion,omitempty"`
	Interview      *InterviewHighlight   `json:"interview,omitempty"`
	EmployerStatus *EmployerStatus       `json:"employer_status,omitempty"`
}

// TalentProfileSummary is the scoring summary section of a profile detail.
type TalentProfileSummary struct {
	Vertical     Vertical `json:"vertical"`
	CurrentScore *float64 `json:"current_score,omitempty"`
	BestScore    *float64 `json:"best_score,omitempty"`
	AttemptCount int      `json:"attempt_count"`
}

// CandidateSection bundles the candidate record with parsed resume and
// GitHub data.
type CandidateSection struct {
	Candidate Candidate         `json:"candidate"`
	Resume    *ParsedResumeData `json:"resume,omitempty"`
	GitHub    *GitHubData       `json:"github,omitempty"`
}

// CompletionStatus flags which parts of the candidate profile are filled in.
type CompletionStatus struct {
	HasResume    bool `json:"has_resume"`
	HasGitHub    bool `json:"has_github"`
	HasInterview bool `json:"has_interview"`
	HasEducation bool `json:"has_education"`
}

// InterviewHighlight is the best completed interview shown to employers.
type InterviewHighlight struct {
	SessionID  uuid.UUID        `json:"session_id"`
	TotalScore *float64         `json:"total_score,omitempty"`
	AISummary  string           `json:"ai_summary,omitempty"`
	Responses  []ResponseDetail `json:"responses"`
}

// EmployerStatus is the requesting employer's pipeline state for the
// candidate.
type EmployerStatus struct {
	Status    MatchStatus `json:"status"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
	Notes     string      `json:"notes,omitempty"`
}

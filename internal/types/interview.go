package types

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus is the lifecycle state of an interview session. The set is
// owned by the backend; the client never invents transitions.
type InterviewStatus string

const (
	InterviewPending    InterviewStatus = "PENDING"
	InterviewScheduled  InterviewStatus = "SCHEDULED"
	InterviewInProgress InterviewStatus = "IN_PROGRESS"
	InterviewCompleted  InterviewStatus = "COMPLETED"
	InterviewCancelled  InterviewStatus = "CANCELLED"
)

// InterviewSession is one AI-scored video interview.
type InterviewSession struct {
	ID          uuid.UUID        `json:"id"`
	Status      InterviewStatus  `json:"status"`
	IsPractice  bool             `json:"is_practice"`
	TotalScore  *float64         `json:"total_score,omitempty"`
	AISummary   string           `json:"ai_summary,omitempty"`
	CandidateID uuid.UUID        `json:"candidate_id"`
	JobID       *uuid.UUID       `json:"job_id,omitempty"`
	Responses   []ResponseDetail `json:"responses"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// InterviewList is one page of sessions plus the total count.
type InterviewList struct {
	Interviews []InterviewSession `json:"interviews"`
	Total      int                `json:"total"`
}

// ResponseDetail is the per-question record inside a session.
type ResponseDetail struct {
	ID            uuid.UUID     `json:"id"`
	QuestionIndex int           `json:"question_index"`
	QuestionText  string        `json:"question_text"`
	VideoURL      string        `json:"video_url,omitempty"`
	Transcription string        `json:"transcription,omitempty"`
	AIScore       *float64      `json:"ai_score,omitempty"`
	AIAnalysis    string        `json:"ai_analysis,omitempty"`
	ScoreDetails  *ScoreDetails `json:"score_details,omitempty"`
}

// ScoreDetails is the structured per-response scoring breakdown. All
// dimension scores are on the platform's 0-10 scale.
type ScoreDetails struct {
	Communication  float64  `json:"communication"`
	TechnicalDepth float64  `json:"technical_depth"`
	ProblemSolving float64  `json:"problem_solving"`
	Relevance      float64  `json:"relevance"`
	Confidence     float64  `json:"confidence"`
	Overall        float64  `json:"overall"`
	Analysis       string   `json:"analysis,omitempty"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Quotes         []string `json:"quotes"`
}

// FeedbackStatus is the processing state of asynchronous coding feedback.
type FeedbackStatus string

const (
	FeedbackProcessing FeedbackStatus = "processing"
	FeedbackCompleted  FeedbackStatus = "completed"
	FeedbackFailed     FeedbackStatus = "failed"
)

// CodingFeedback is the AI evaluation of a coding exercise attached to an
// interview session. Score and analysis stay empty while Status is
// "processing".
type CodingFeedback struct {
	Status    FeedbackStatus `json:"status"`
	Score     *float64       `json:"score,omitempty"`
	Analysis  string         `json:"analysis,omitempty"`
	Strengths []string       `json:"strengths,omitempty"`
	Concerns  []string       `json:"concerns,omitempty"`
}

// Question is one interview question for a vertical/role pairing.
type Question struct {
	ID       uuid.UUID `json:"id"`
	Index    int       `json:"index"`
	Text     string    `json:"text"`
	Vertical Vertical  `json:"vertical"`
	RoleType string    `json:"role_type,omitempty"`
}

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/talentloop/talentloop-go/internal/types"
)

// InterviewService covers the interview session lifecycle: starting,
// listing, responses, and the asynchronous coding feedback.
type InterviewService struct {
	client *Client
}

// StartInterviewOptions configures Start. JobID nil means a practice-style
// open interview; the wire body still carries job_id as an explicit null.
type StartInterviewOptions struct {
	CandidateID uuid.UUID
	JobID       *uuid.UUID
	Practice    bool
}

// startInterviewBody is the wire shape of the start call. job_id is emitted
// even when nil so the backend sees an explicit null rather than an omitted
// key.
type startInterviewBody struct {
	CandidateID uuid.UUID  `json:"candidate_id"`
	JobID       *uuid.UUID `json:"job_id"`
	IsPractice  bool       `json:"is_practice"`
}

// InterviewListOptions filters List.
type InterviewListOptions struct {
	Status types.InterviewStatus
	Limit  int
	Offset int
}

// Start creates a new interview session for a candidate.
func (s *InterviewService) Start(ctx context.Context, opts StartInterviewOptions) (*types.InterviewSession, error) {
	body := startInterviewBody{
		CandidateID: opts.CandidateID,
		JobID:       opts.JobID,
		IsPractice:  opts.Practice,
	}

	var out types.InterviewSession
	if err := s.client.do(ctx, http.MethodPost, "/interviews", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one session with its per-question responses.
func (s *InterviewService) Get(ctx context.Context, id uuid.UUID) (*types.InterviewSession, error) {
	var out types.InterviewSession
	if err := s.client.do(ctx, http.MethodGet, "/interviews/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of sessions plus the total count.
func (s *InterviewService) List(ctx context.Context, opts InterviewListOptions) (*types.InterviewList, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", string(opts.Status))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}

	var out types.InterviewList
	if err := s.client.do(ctx, http.MethodGet, "/interviews", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Interviews == nil {
		out.Interviews = []types.InterviewSession{}
	}
	return &out, nil
}

// Cancel cancels a pending or scheduled session. Invalid transitions come
// back as an *APIError with the backend's message.
func (s *InterviewService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodPost, "/interviews/"+id.String()+"/cancel", nil, nil, nil)
}

// CodingFeedback fetches the coding-exercise evaluation for a session. While
// the backend is still scoring, Status is "processing".
func (s *InterviewService) CodingFeedback(ctx context.Context, id uuid.UUID) (*types.CodingFeedback, error) {
	var out types.CodingFeedback
	if err := s.client.do(ctx, http.MethodGet, "/interviews/"+id.String()+"/coding-feedback", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/talentloop/talentloop-go/internal/types"
)

const (
	defaultPollAttempts = 30
	defaultPollInterval = 2 * time.Second
)

// PollOptions bounds PollCodingResults. Zero values use the defaults. The
// ceiling is an attempt count, not a wall-clock timeout.
type PollOptions struct {
	MaxAttempts int
	Interval    time.Duration
}

// PollCodingResults fetches coding feedback until it leaves the "processing"
// state, waiting Interval between attempts. If the ceiling is reached while
// still processing, it returns a 408-status *APIError; no extra server round
// trip is made beyond the polling calls themselves. Any fetch error aborts
// the loop immediately.
func (s *InterviewService) PollCodingResults(ctx context.Context, id uuid.UUID, opts *PollOptions) (*types.CodingFeedback, error) {
	attempts := defaultPollAttempts
	interval := defaultPollInterval
	if opts != nil {
		if opts.MaxAttempts > 0 {
			attempts = opts.MaxAttempts
		}
		if opts.Interval > 0 {
			interval = opts.Interval
		}
	}

	for i := 0; i < attempts; i++ {
		feedback, err := s.CodingFeedback(ctx, id)
		if err != nil {
			return nil, err
		}
		if feedback.Status != types.FeedbackProcessing {
			return feedback, nil
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, &APIError{
		Status:  http.StatusRequestTimeout,
		Message: fmt.Sprintf("coding results still processing after %d attempts", attempts),
	}
}

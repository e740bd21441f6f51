package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/talentloop/talentloop-go/internal/types"
)

// EmployerService covers the employer's own account and its job postings.
type EmployerService struct {
	client *Client
}

// JobListOptions filters ListJobs. A nil Active means no is_active parameter
// is sent at all, which returns jobs in both states.
type JobListOptions struct {
	Active *bool
	Limit  int
	Offset int
}

// Me returns the authenticated employer.
func (s *EmployerService) Me(ctx context.Context) (*types.Employer, error) {
	var out types.Employer
	if err := s.client.do(ctx, http.MethodGet, "/employers/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to the employer profile.
func (s *EmployerService) Update(ctx context.Context, req types.UpdateEmployerRequest) (*types.Employer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Employer
	if err := s.client.do(ctx, http.MethodPatch, "/employers/me", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJobs returns one page of the employer's jobs plus the total count.
func (s *EmployerService) ListJobs(ctx context.Context, opts JobListOptions) (*types.JobList, error) {
	query := url.Values{}
	if opts.Active != nil {
		query.Set("is_active", strconv.FormatBool(*opts.Active))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}

	var out types.JobList
	if err := s.client.do(ctx, http.MethodGet, "/jobs", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Jobs == nil {
		out.Jobs = []types.Job{}
	}
	return &out, nil
}

// GetJob returns one job by id.
func (s *EmployerService) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var out types.Job
	if err := s.client.do(ctx, http.MethodGet, "/jobs/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateJob posts a new job.
func (s *EmployerService) CreateJob(ctx context.Context, req types.CreateJobRequest) (*types.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Job
	if err := s.client.do(ctx, http.MethodPost, "/jobs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJob applies a partial update to a job.
func (s *EmployerService) UpdateJob(ctx context.Context, id uuid.UUID, req types.UpdateJobRequest) (*types.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Job
	if err := s.client.do(ctx, http.MethodPatch, "/jobs/"+id.String(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetJobActive activates or deactivates a job posting.
func (s *EmployerService) SetJobActive(ctx context.Context, id uuid.UUID, active bool) (*types.Job, error) {
	body := struct {
		IsActive bool `json:"is_active"`
	}{IsActive: active}

	var out types.Job
	if err := s.client.do(ctx, http.MethodPatch, "/jobs/"+id.String()+"/active", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

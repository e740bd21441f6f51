package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/talentloop/talentloop-go/internal/transform"
	"github.com/talentloop/talentloop-go/internal/types"
)

// CandidateService covers the candidate's own profile: identity, resume,
// GitHub linkage, and the profile-sharing settings.
type CandidateService struct {
	client *Client
}

// Me returns the authenticated candidate.
func (s *CandidateService) Me(ctx context.Context) (*types.Candidate, error) {
	var out types.Candidate
	if err := s.client.do(ctx, http.MethodGet, "/candidates/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to the candidate profile.
func (s *CandidateService) Update(ctx context.Context, req types.UpdateCandidateRequest) (*types.Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Candidate
	if err := s.client.do(ctx, http.MethodPatch, "/candidates/me", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResumeStatus reports whether the candidate has a resume on file.
func (s *CandidateService) ResumeStatus(ctx context.Context) (*types.ResumeStatus, error) {
	var out types.ResumeStatus
	if err := s.client.do(ctx, http.MethodGet, "/candidates/me/resume/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resume returns the parsed resume data. List fields are always non-nil.
func (s *CandidateService) Resume(ctx context.Context) (*types.ParsedResumeData, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/candidates/me/resume", nil, nil, &raw); err != nil {
		return nil, err
	}
	resume := transform.Resume(raw)
	return &resume, nil
}

// LinkGitHub attaches a GitHub account to the candidate profile and triggers
// a backend crawl of its public data.
func (s *CandidateService) LinkGitHub(ctx context.Context, username string) (*types.GitHubData, error) {
	body := struct {
		Username string `json:"username"`
	}{Username: username}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/candidates/me/github", nil, body, &raw); err != nil {
		return nil, err
	}
	data := transform.GitHub(raw)
	return &data, nil
}

// GitHub returns the crawled GitHub aggregate for the candidate.
func (s *CandidateService) GitHub(ctx context.Context) (*types.GitHubData, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/candidates/me/github", nil, nil, &raw); err != nil {
		return nil, err
	}
	data := transform.GitHub(raw)
	return &data, nil
}

// Sharing returns the candidate's profile-sharing settings with the share
// URL derived from the configured link base.
func (s *CandidateService) Sharing(ctx context.Context) (*types.SharingSettings, error) {
	var out types.SharingSettings
	if err := s.client.do(ctx, http.MethodGet, "/candidates/me/sharing", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		out.ShareURL = s.client.shareURL(out.Token)
	}
	return &out, nil
}

// SetSharing enables or disables public profile sharing. Enabling returns a
// fresh share token.
func (s *CandidateService) SetSharing(ctx context.Context, enabled bool) (*types.SharingSettings, error) {
	body := struct {
		Enabled bool `json:"enabled"`
	}{Enabled: enabled}

	var out types.SharingSettings
	if err := s.client.do(ctx, http.MethodPut, "/candidates/me/sharing", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		out.ShareURL = s.client.shareURL(out.Token)
	}
	return &out, nil
}

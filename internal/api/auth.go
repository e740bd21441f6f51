package api

import (
	"context"
	"net/http"

	"github.com/talentloop/talentloop-go/internal/session"
	"github.com/talentloop/talentloop-go/internal/types"
)

// AuthService handles registration, login, and logout for both account
// types. Successful calls store the returned bearer token in the credential
// store.
type AuthService struct {
	client *Client
}

// RegisterCandidate creates a candidate account and stores its token.
func (s *AuthService) RegisterCandidate(ctx context.Context, req types.RegisterCandidateRequest) (*types.Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.CandidateAuthResponse
	if err := s.client.doAnon(ctx, http.MethodPost, "/auth/candidates/register", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := s.storeToken(session.KindCandidate, resp.Token); err != nil {
		return nil, err
	}
	return &resp.Candidate, nil
}

// LoginCandidate authenticates a candidate and stores its token.
func (s *AuthService) LoginCandidate(ctx context.Context, req types.LoginRequest) (*types.Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.CandidateAuthResponse
	if err := s.client.doAnon(ctx, http.MethodPost, "/auth/candidates/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := s.storeToken(session.KindCandidate, resp.Token); err != nil {
		return nil, err
	}
	return &resp.Candidate, nil
}

// RegisterEmployer creates an employer account and stores its token.
func (s *AuthService) RegisterEmployer(ctx context.Context, req types.RegisterEmployerRequest) (*types.Employer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.EmployerAuthResponse
	if err := s.client.doAnon(ctx, http.MethodPost, "/auth/employers/register", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := s.storeToken(session.KindEmployer, resp.Token); err != nil {
		return nil, err
	}
	return &resp.Employer, nil
}

// LoginEmployer authenticates an employer and stores its token.
func (s *AuthService) LoginEmployer(ctx context.Context, req types.LoginRequest) (*types.Employer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.EmployerAuthResponse
	if err := s.client.doAnon(ctx, http.MethodPost, "/auth/employers/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := s.storeToken(session.KindEmployer, resp.Token); err != nil {
		return nil, err
	}
	return &resp.Employer, nil
}

// Logout clears the credential store. There is no server-side session to
// invalidate; tokens simply expire.
func (s *AuthService) Logout() error {
	if s.client.creds == nil {
		return nil
	}
	return s.client.creds.Clear()
}

func (s *AuthService) storeToken(kind session.Kind, token string) error {
	if s.client.creds == nil || token == "" {
		return nil
	}
	return s.client.creds.SetToken(kind, token)
}

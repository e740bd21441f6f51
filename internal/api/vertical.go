package api

import (
	"context"
	"net/http"

	"github.com/talentloop/talentloop-go/internal/types"
)

// VerticalService covers the industry verticals and the candidate's
// per-vertical interview standing.
type VerticalService struct {
	client *Client
}

// List returns the verticals the platform serves, with their role types.
func (s *VerticalService) List(ctx context.Context) ([]types.VerticalInfo, error) {
	var out struct {
		Verticals []types.VerticalInfo `json:"verticals"`
	}
	if err := s.client.doAnon(ctx, http.MethodGet, "/verticals", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Verticals == nil {
		out.Verticals = []types.VerticalInfo{}
	}
	return out.Verticals, nil
}

// RoleTypes returns the role types scoped to one vertical.
func (s *VerticalService) RoleTypes(ctx context.Context, vertical types.Vertical) ([]string, error) {
	var out struct {
		RoleTypes []string `json:"role_types"`
	}
	if err := s.client.doAnon(ctx, http.MethodGet, "/verticals/"+string(vertical)+"/roles", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.RoleTypes == nil {
		out.RoleTypes = []string{}
	}
	return out.RoleTypes, nil
}

// CandidateProfiles returns the authenticated candidate's vertical profiles,
// including the cooldown-derived can_interview flag.
func (s *VerticalService) CandidateProfiles(ctx context.Context) ([]types.VerticalProfile, error) {
	var out struct {
		Profiles []types.VerticalProfile `json:"profiles"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/candidates/me/vertical-profiles", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Profiles == nil {
		out.Profiles = []types.VerticalProfile{}
	}
	return out.Profiles, nil
}

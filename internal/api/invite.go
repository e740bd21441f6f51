package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/talentloop/talentloop-go/internal/types"
)

// InviteService manages shareable interview-invite links for jobs.
type InviteService struct {
	client *Client
}

// Create mints a new invite token for a job. The returned InviteURL is
// derived from the configured link base.
func (s *InviteService) Create(ctx context.Context, req types.CreateInviteRequest) (*types.InviteToken, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.InviteToken
	if err := s.client.do(ctx, http.MethodPost, "/invites", nil, req, &out); err != nil {
		return nil, err
	}
	out.InviteURL = s.client.inviteURL(out.Token)
	return &out, nil
}

// ListForJob returns every invite token minted for a job.
func (s *InviteService) ListForJob(ctx context.Context, jobID uuid.UUID) ([]types.InviteToken, error) {
	var out struct {
		Invites []types.InviteToken `json:"invites"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/jobs/"+jobID.String()+"/invites", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Invites == nil {
		out.Invites = []types.InviteToken{}
	}
	for i := range out.Invites {
		out.Invites[i].InviteURL = s.client.inviteURL(out.Invites[i].Token)
	}
	return out.Invites, nil
}

// Deactivate disables an invite token so the link stops admitting
// candidates.
func (s *InviteService) Deactivate(ctx context.Context, token string) error {
	return s.client.do(ctx, http.MethodPost, "/invites/"+token+"/deactivate", nil, nil, nil)
}

// Resolve looks up an invite token without authentication, for candidates
// following an invite link.
func (s *InviteService) Resolve(ctx context.Context, token string) (*types.InviteToken, error) {
	var out types.InviteToken
	if err := s.client.doAnon(ctx, http.MethodGet, "/invites/"+token, nil, nil, &out); err != nil {
		return nil, err
	}
	out.InviteURL = s.client.inviteURL(out.Token)
	return &out, nil
}

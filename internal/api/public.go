package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/talentloop/talentloop-go/internal/transform"
	"github.com/talentloop/talentloop-go/internal/types"
)

// PublicService is the unauthenticated surface: token-gated shared candidate
// profiles. No bearer header is ever attached here.
type PublicService struct {
	client *Client
}

// SharedProfile fetches a candidate profile by share token. The employer
// status section is never present on the public surface.
func (s *PublicService) SharedProfile(ctx context.Context, token string) (*types.TalentProfileDetail, error) {
	query := url.Values{}
	query.Set("token", token)

	var raw json.RawMessage
	if err := s.client.doAnon(ctx, http.MethodGet, "/public/profile", query, nil, &raw); err != nil {
		return nil, err
	}
	detail := transform.TalentProfile(raw)
	return &detail, nil
}

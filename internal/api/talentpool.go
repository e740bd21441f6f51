package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/talentloop/talentloop-go/internal/transform"
	"github.com/talentloop/talentloop-go/internal/types"
)

// TalentPoolService is the employer-facing browse/filter surface plus the
// per-candidate pipeline status mutations.
type TalentPoolService struct {
	client *Client
}

// BrowseOptions filters Browse. Absent fields are omitted from the query
// string entirely.
type BrowseOptions struct {
	Vertical types.Vertical
	RoleType string
	MinScore *float64
	Search   string
	Limit    int
	Offset   int
}

func (o BrowseOptions) query() url.Values {
	query := url.Values{}
	if o.Vertical != "" {
		query.Set("vertical", string(o.Vertical))
	}
	if o.RoleType != "" {
		query.Set("role_type", o.RoleType)
	}
	if o.MinScore != nil {
		query.Set("min_score", strconv.FormatFloat(*o.MinScore, 'f', -1, 64))
	}
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		query.Set("offset", strconv.Itoa(o.Offset))
	}
	return query
}

// Browse returns one page of the talent pool plus the total match count.
func (s *TalentPoolService) Browse(ctx context.Context, opts BrowseOptions) (*types.TalentPoolPage, error) {
	var out types.TalentPoolPage
	if err := s.client.do(ctx, http.MethodGet, "/talent-pool", opts.query(), nil, &out); err != nil {
		return nil, err
	}
	if out.Candidates == nil {
		out.Candidates = []types.TalentPoolCandidate{}
	}
	return &out, nil
}

// Profile returns the full profile aggregate for one candidate. Sections the
// backend omitted are nil.
func (s *TalentPoolService) Profile(ctx context.Context, candidateID uuid.UUID) (*types.TalentProfileDetail, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/talent-pool/"+candidateID.String(), nil, nil, &raw); err != nil {
		return nil, err
	}
	detail := transform.TalentProfile(raw)
	return &detail, nil
}

// UpdateMatchStatus moves one candidate to a new pipeline state. Invalid
// transitions surface as an *APIError with the backend's message.
func (s *TalentPoolService) UpdateMatchStatus(ctx context.Context, candidateID uuid.UUID, status types.MatchStatus) (*types.EmployerStatus, error) {
	body := struct {
		Status types.MatchStatus `json:"status"`
	}{Status: status}

	var out types.EmployerStatus
	if err := s.client.do(ctx, http.MethodPatch, "/talent-pool/"+candidateID.String()+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpdateStatus moves several candidates to the same pipeline state in
// one call, for the shortlist/reject bulk actions.
func (s *TalentPoolService) BulkUpdateStatus(ctx context.Context, candidateIDs []uuid.UUID, status types.MatchStatus) error {
	body := struct {
		CandidateIDs []uuid.UUID       `json:"candidate_ids"`
		Status       types.MatchStatus `json:"status"`
	}{CandidateIDs: candidateIDs, Status: status}

	return s.client.do(ctx, http.MethodPost, "/talent-pool/bulk-status", nil, body, nil)
}

// Contact asks the platform to introduce the employer to a candidate and
// moves the match to CONTACTED.
func (s *TalentPoolService) Contact(ctx context.Context, candidateID uuid.UUID, message string) (*types.EmployerStatus, error) {
	body := struct {
		Message string `json:"message,omitempty"`
	}{Message: message}

	var out types.EmployerStatus
	if err := s.client.do(ctx, http.MethodPost, "/talent-pool/"+candidateID.String()+"/contact", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

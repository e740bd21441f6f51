package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/talentloop/talentloop-go/internal/types"
)

// QuestionService fetches the interview question sets.
type QuestionService struct {
	client *Client
}

// ForVertical returns the question set for a vertical, optionally narrowed
// to one role type.
func (s *QuestionService) ForVertical(ctx context.Context, vertical types.Vertical, roleType string) ([]types.Question, error) {
	query := url.Values{}
	query.Set("vertical", string(vertical))
	if roleType != "" {
		query.Set("role_type", roleType)
	}

	var out struct {
		Questions []types.Question `json:"questions"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/questions", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Questions == nil {
		out.Questions = []types.Question{}
	}
	return out.Questions, nil
}

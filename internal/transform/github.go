package transform

import (
	"encoding/json"

	"github.com/talentloop/talentloop-go/internal/types"
)

// GitHub decodes a GitHub-aggregate payload. Repo list and language map are
// never nil in the result.
func GitHub(raw []byte) types.GitHubData {
	var out types.GitHubData
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}

	if out.Repos == nil {
		out.Repos = []types.RepoSummary{}
	}
	if out.Languages == nil {
		out.Languages = map[string]int{}
	}

	return out
}

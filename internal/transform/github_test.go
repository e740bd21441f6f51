package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHub_FullPayload(t *testing.T) {
	raw := []byte(`{
		"username": "octocat",
		"profile_url": "https://github.com/octocat",
		"public_repos": 12,
		"followers": 40,
		"following": 3,
		"repos": [
			{"name": "spoon-knife", "language": "Go", "stars": 9, "forks": 2}
		],
		"languages": {"Go": 120345, "Python": 4521},
		"total_contributions": 871
	}`)

	data := GitHub(raw)

	assert.Equal(t, "octocat", data.Username)
	assert.Equal(t, 12, data.PublicRepos)
	require.Len(t, data.Repos, 1)
	assert.Equal(t, "spoon-knife", data.Repos[0].Name)
	assert.Equal(t, 120345, data.Languages["Go"])
	require.NotNil(t, data.TotalContributions)
	assert.Equal(t, 871, *data.TotalContributions)
}

func TestGitHub_AbsentCollectionsDefaulted(t *testing.T) {
	data := GitHub([]byte(`{"username": "octocat"}`))

	assert.NotNil(t, data.Repos)
	assert.NotNil(t, data.Languages)
	assert.Nil(t, data.TotalContributions)
}

func TestGitHub_MalformedInput(t *testing.T) {
	data := GitHub([]byte(`{{`))
	assert.Empty(t, data.Username)
	assert.NotNil(t, data.Repos)
	assert.NotNil(t, data.Languages)
}

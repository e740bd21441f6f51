package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentloop/talentloop-go/internal/types"
)

func TestCandidateMe(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "Dana Smith", "email": "dana@example.com", "target_roles": ["Backend"], "graduation_year": 2024}`))
	}))

	me, err := client.Candidates.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dana Smith", me.Name)
	assert.Equal(t, []string{"Backend"}, me.TargetRoles)
	assert.Equal(t, 2024, me.GraduationYear)
}

func TestCandidateUpdate_PartialBody(t *testing.T) {
	var raw []byte
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var err error
		raw, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "Dana Smith", "university": "State University"}`))
	}))

	university := "State University"
	_, err := client.Candidates.Update(context.Background(), types.UpdateCandidateRequest{University: &university})
	require.NoError(t, err)
	// Unset fields stay off the wire entirely.
	assert.JSONEq(t, `{"university": "State University"}`, string(raw))
}

func TestCandidateResume_AppliesTransform(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary": "Engineer", "experience": [{"company": "Acme", "title": "Engineer", "start_date": "2021-03"}]}`))
	}))

	resume, err := client.Candidates.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Engineer", resume.Summary)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "2021-03", resume.Experience[0].StartDate)
	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Projects)
}

func TestLinkGitHub(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"username": "dsmith"}`, string(data))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username": "dsmith", "public_repos": 7}`))
	}))

	data, err := client.Candidates.LinkGitHub(context.Background(), "dsmith")
	require.NoError(t, err)
	assert.Equal(t, "dsmith", data.Username)
	assert.Equal(t, 7, data.PublicRepos)
	assert.NotNil(t, data.Repos)
	assert.NotNil(t, data.Languages)
}

func TestSetSharing_DerivesShareURL(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"enabled": true}`, string(data))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"enabled": true, "token": "share-xyz"}`))
	}))

	settings, err := client.Candidates.SetSharing(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, settings.Enabled)
	assert.Contains(t, settings.ShareURL, "token=share-xyz")
}

func TestSharing_DisabledHasNoURL(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"enabled": false}`))
	}))

	settings, err := client.Candidates.Sharing(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.Enabled)
	assert.Empty(t, settings.ShareURL)
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentloop/talentloop-go/internal/session"
	"github.com/talentloop/talentloop-go/internal/types"
)

func TestCreateInvite_DerivesURL(t *testing.T) {
	jobID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invites", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token": "inv-abc123", "job_id": "` + jobID.String() + `", "used_count": 0, "max_uses": 10, "is_active": true}`))
	}))
	t.Cleanup(server.Close)

	store, err := session.Open("")
	require.NoError(t, err)
	client := NewClient(Config{
		BaseURL:     server.URL,
		LinkBaseURL: "https://talentloop.example.com",
		Credentials: store,
	})

	invite, err := client.Invites.Create(context.Background(), types.CreateInviteRequest{
		JobID:   jobID,
		MaxUses: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "inv-abc123", invite.Token)
	assert.Equal(t, jobID, invite.JobID)
	assert.Equal(t, "https://talentloop.example.com/invite/inv-abc123", invite.InviteURL)
}

func TestCreateInvite_Validation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("server should not be reached")
	}))

	_, err := client.Invites.Create(context.Background(), types.CreateInviteRequest{MaxUses: 10})
	assert.Error(t, err)

	_, err = client.Invites.Create(context.Background(), types.CreateInviteRequest{JobID: uuid.New(), MaxUses: 0})
	assert.Error(t, err)
}

func TestListInvitesForJob(t *testing.T) {
	jobID := uuid.New()
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/"+jobID.String()+"/invites", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"invites": [{"token": "inv-1", "is_active": true}, {"token": "inv-2", "is_active": false}]}`))
	}))

	invites, err := client.Invites.ListForJob(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, invites, 2)
	assert.NotEmpty(t, invites[0].InviteURL)
	assert.Contains(t, invites[1].InviteURL, "inv-2")
}

func TestListInvitesForJob_EmptyDefaulted(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	invites, err := client.Invites.ListForJob(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, invites)
	assert.Empty(t, invites)
}

func TestDeactivateInvite(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invites/inv-abc123/deactivate", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Invites.Deactivate(context.Background(), "inv-abc123"))
}

func TestResolveInvite_NoBearer(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "inv-abc123", "used_count": 3, "max_uses": 10, "is_active": true}`))
	}))
	require.NoError(t, store.SetToken(session.KindCandidate, "cand-jwt"))

	invite, err := client.Invites.Resolve(context.Background(), "inv-abc123")
	require.NoError(t, err)
	assert.True(t, invite.IsActive)
	assert.Equal(t, 3, invite.UsedCount)
}

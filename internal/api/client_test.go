package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentloop/talentloop-go/internal/session"
)

// newTestClient wires a client against an httptest server with an in-memory
// credential store.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.Open("")
	require.NoError(t, err)

	client := NewClient(Config{
		BaseURL:     server.URL,
		Credentials: store,
	})
	return client, store
}

func TestDispatch_JSONHeadersAndDecode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": "ok"}`))
	}))

	var out struct {
		Value string `json:"value"`
	}
	err := client.do(context.Background(), http.MethodGet, "/ping", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
}

func TestDispatch_PrefersEmployerToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, store.SetToken(session.KindCandidate, "cand-token"))
	require.NoError(t, store.SetToken(session.KindEmployer, "emp-token"))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/me", nil, nil, nil))
	assert.Equal(t, "Bearer emp-token", gotAuth)
}

func TestDispatch_CandidateTokenWhenOnlyOne(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, store.SetToken(session.KindCandidate, "cand-token"))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/me", nil, nil, nil))
	assert.Equal(t, "Bearer cand-token", gotAuth)
}

func TestDispatch_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/ping", nil, nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDispatch_AnonNeverSendsToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, store.SetToken(session.KindEmployer, "emp-token"))

	require.NoError(t, client.doAnon(context.Background(), http.MethodGet, "/public/profile", nil, nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDispatch_NoContentLeavesOutputUntouched(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	out := struct {
		Value string `json:"value"`
	}{Value: "sentinel"}
	err := client.do(context.Background(), http.MethodDelete, "/thing", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", out.Value)
}

func TestDispatch_ErrorCarriesStatusAndDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "email already registered"}`))
	}))

	err := client.do(context.Background(), http.MethodPost, "/auth/candidates/register", nil, map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestDispatch_ErrorWithNonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))

	err := client.do(context.Background(), http.MethodGet, "/jobs", nil, nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestDispatch_ErrorWithStructuredDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": {"message": "invalid transition", "from": "HIRED", "to": "PENDING"}}`))
	}))

	err := client.do(context.Background(), http.MethodPatch, "/talent-pool/x/status", nil, nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "invalid transition", apiErr.Message)
	assert.Equal(t, "HIRED", apiErr.Details["from"])
}

func TestDispatch_ErrorWithEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.do(context.Background(), http.MethodGet, "/me", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestIsStatusHelpers(t *testing.T) {
	notFound := &APIError{Status: http.StatusNotFound, Message: "no such job"}
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsUnauthorized(notFound))
	assert.True(t, IsStatus(notFound, http.StatusNotFound))
	assert.False(t, IsStatus(assert.AnError, http.StatusNotFound))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultBaseURL, client.linkBaseURL)
	assert.NotNil(t, client.Auth)
	assert.NotNil(t, client.TalentPool)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.example.com/"})
	assert.Equal(t, "https://api.example.com", client.baseURL)
}

func TestLinkDerivation(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.example.com", LinkBaseURL: "https://talentloop.example.com"})
	assert.Equal(t, "https://talentloop.example.com/invite/tok123", client.inviteURL("tok123"))
	assert.Equal(t, "https://talentloop.example.com/profile/shared?token=tok123", client.shareURL("tok123"))
}

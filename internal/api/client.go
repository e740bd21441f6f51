// Package api is the typed client for the TalentLoop platform REST API. One
// service per backend resource; every call is a single request whose failure
// surfaces as an *APIError. There are no retries and no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/talentloop/talentloop-go/internal/logging"
	"github.com/talentloop/talentloop-go/internal/session"
)

// DefaultBaseURL is the local development backend address.
const DefaultBaseURL = "http://localhost:8000"

// Config configures a Client. Zero values fall back to defaults; Credentials
// may be nil for a client that only touches the public surface.
type Config struct {
	BaseURL string
	// LinkBaseURL is used when deriving invite and profile-share links.
	// Defaults to BaseURL.
	LinkBaseURL string
	HTTPClient  *http.Client
	Credentials *session.Store
	Logger      *logging.Logger
}

// Client talks to the TalentLoop backend. Use the per-resource service
// fields; the client itself only carries the transport.
type Client struct {
	baseURL     string
	linkBaseURL string
	httpClient  *http.Client
	creds       *session.Store
	log         *logging.Logger

	Auth       *AuthService
	Candidates *CandidateService
	Employers  *EmployerService
	Interviews *InterviewService
	Invites    *InviteService
	TalentPool *TalentPoolService
	Verticals  *VerticalService
	Questions  *QuestionService
	Public     *PublicService
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	linkBaseURL := strings.TrimSuffix(cfg.LinkBaseURL, "/")
	if linkBaseURL == "" {
		linkBaseURL = baseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	c := &Client{
		baseURL:     baseURL,
		linkBaseURL: linkBaseURL,
		httpClient:  httpClient,
		creds:       cfg.Credentials,
		log:         log,
	}
	c.Auth = &AuthService{client: c}
	c.Candidates = &CandidateService{client: c}
	c.Employers = &EmployerService{client: c}
	c.Interviews = &InterviewService{client: c}
	c.Invites = &InviteService{client: c}
	c.TalentPool = &TalentPoolService{client: c}
	c.Verticals = &VerticalService{client: c}
	c.Questions = &QuestionService{client: c}
	c.Public = &PublicService{client: c}
	return c
}

// do issues an authenticated JSON request. See dispatch for the contract.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.dispatch(ctx, method, path, query, body, out, true)
}

// doAnon issues a request without a bearer token, for the public surface.
func (c *Client) doAnon(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.dispatch(ctx, method, path, query, body, out, false)
}

// dispatch builds and executes one request. A 2xx response with a body is
// decoded into out; 204 (or a nil out) leaves out untouched and returns nil.
// Any non-2xx status becomes an *APIError carrying the backend's detail
// message when one can be parsed.
func (c *Client) dispatch(ctx context.Context, method, path string, query url.Values, body, out any, withAuth bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if withAuth {
		if token, kind, ok := c.bearer(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			c.log.Debug("attached bearer token", "kind", kind)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp)
		c.log.Debug("request failed", "method", method, "path", path, "status", apiErr.Status)
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, path, err)
	}
	return nil
}

// bearer returns the stored token, preferring the employer token. The store
// is optional.
func (c *Client) bearer() (string, session.Kind, bool) {
	if c.creds == nil {
		return "", "", false
	}
	return c.creds.Token()
}

// inviteURL derives the shareable link for an invite token.
func (c *Client) inviteURL(token string) string {
	return fmt.Sprintf("%s/invite/%s", c.linkBaseURL, token)
}

// shareURL derives the shareable link for a public candidate profile.
func (c *Client) shareURL(token string) string {
	return fmt.Sprintf("%s/profile/shared?token=%s", c.linkBaseURL, url.QueryEscape(token))
}

// Package session holds the bearer tokens used to authenticate against the
// TalentLoop API. Tokens live in a small JSON file so CLI invocations share a
// login; the store object is injected into the API client rather than read
// from ambient global state.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind identifies which account type a token belongs to.
type Kind string

const (
	KindEmployer  Kind = "employer"
	KindCandidate Kind = "candidate"
)

// credentials is the on-disk shape. Keys match the browser localStorage keys
// the platform has always used.
type credentials struct {
	EmployerToken  string `json:"employer_token,omitempty"`
	CandidateToken string `json:"candidate_token,omitempty"`
}

// Store is a file-backed credential store. A Store opened with an empty path
// keeps tokens in memory only, which tests and one-off scripts rely on.
type Store struct {
	path string

	mu    sync.Mutex
	creds credentials
}

// Open loads the credential file at path if it exists. A missing file is not
// an error; the store starts empty and creates the file on first write.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.creds); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", path, err)
	}
	return s, nil
}

// Token returns the stored bearer token, preferring the employer token when
// both account types are logged in.
func (s *Store) Token() (string, Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds.EmployerToken != "" {
		return s.creds.EmployerToken, KindEmployer, true
	}
	if s.creds.CandidateToken != "" {
		return s.creds.CandidateToken, KindCandidate, true
	}
	return "", "", false
}

// SetToken stores a token for the given account kind and persists the store.
func (s *Store) SetToken(kind Kind, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindEmployer:
		s.creds.EmployerToken = token
	case KindCandidate:
		s.creds.CandidateToken = token
	default:
		return fmt.Errorf("unknown token kind %q", kind)
	}
	return s.persist()
}

// Clear removes all stored tokens. Called on logout and when the backend
// rejects a token with 401.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = credentials{}
	return s.persist()
}

// persist writes the credential file with owner-only permissions. Caller must
// hold the mutex.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := json.MarshalIndent(s.creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials %s: %w", s.path, err)
	}
	return nil
}

// Expired reports whether a stored JWT has passed its exp claim. The
// signature is not verified; this is a local pre-check so the CLI can prompt
// for a fresh login before burning a request. Tokens without an exp claim or
// that do not parse as JWTs are treated as not expired and left for the
// backend to judge.
func Expired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of an error response is read when extracting
// the detail message.
const maxErrorBody = 1 << 20

// APIError is the single error shape every failed request surfaces as. The
// taxonomy is flat on purpose: Status and Message carry whatever the backend
// supplied, and callers branch on Status, never on the message text.
type APIError struct {
	Status  int
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// newAPIError extracts the backend's detail field from an error response.
// FastAPI-style backends send {"detail": "..."} or {"detail": {...}}; a body
// that is not JSON, or lacks the field, falls back to a generic message so
// the status code is never lost.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return apiErr
	}

	var msg string
	if err := json.Unmarshal(payload.Detail, &msg); err == nil && msg != "" {
		apiErr.Message = msg
		return apiErr
	}

	var details map[string]any
	if err := json.Unmarshal(payload.Detail, &details); err == nil {
		apiErr.Details = details
		if m, ok := details["message"].(string); ok && m != "" {
			apiErr.Message = m
		}
	}
	return apiErr
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether the backend rejected the bearer token.
// Callers clear their session on this, not on message-text matching.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether the requested resource does not exist.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/talentloop/talentloop-go/internal/transform"
	"github.com/talentloop/talentloop-go/internal/types"
)

// upload sends one file as multipart/form-data under the given field name.
// This path bypasses the JSON transport, so the bearer token is attached by
// hand and the content type comes from the multipart writer.
func (c *Client) upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read upload %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if token, _, ok := c.bearer(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upload response: %w", err)
	}
	return nil
}

// UploadResume uploads a resume file for backend parsing and returns the
// parsed result.
func (s *CandidateService) UploadResume(ctx context.Context, filename string, r io.Reader) (*types.ParsedResumeData, error) {
	var raw json.RawMessage
	if err := s.client.upload(ctx, "/candidates/me/resume", "file", filename, r, &raw); err != nil {
		return nil, err
	}
	resume := transform.Resume(raw)
	return &resume, nil
}

// UploadResponseVideo uploads the recorded answer for one question of a
// session.
func (s *InterviewService) UploadResponseVideo(ctx context.Context, sessionID, responseID uuid.UUID, filename string, r io.Reader) (*types.ResponseDetail, error) {
	path := fmt.Sprintf("/interviews/%s/responses/%s/video", sessionID, responseID)
	var out types.ResponseDetail
	if err := s.client.upload(ctx, path, "video", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadTranscript uploads a transcript file for one response, for flows
// where transcription happens client-side.
func (s *InterviewService) UploadTranscript(ctx context.Context, sessionID, responseID uuid.UUID, filename string, r io.Reader) (*types.ResponseDetail, error) {
	path := fmt.Sprintf("/interviews/%s/responses/%s/transcript", sessionID, responseID)
	var out types.ResponseDetail
	if err := s.client.upload(ctx, path, "file", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

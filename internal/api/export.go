package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ExportCSV downloads the talent-pool export for the given filters and
// returns the raw CSV bytes.
func (s *TalentPoolService) ExportCSV(ctx context.Context, opts BrowseOptions) ([]byte, error) {
	u := s.client.baseURL + "/talent-pool/export"
	if query := opts.query(); len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build export request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")
	if token, _, ok := s.client.bearer(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export talent pool: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export body: %w", err)
	}
	return data, nil
}

// SaveCSV downloads the export and writes it to dir under a date-stamped
// filename, returning the written path.
func (s *TalentPoolService) SaveCSV(ctx context.Context, dir string, opts BrowseOptions) (string, error) {
	data, err := s.ExportCSV(ctx, opts)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("talent_pool_%s.csv", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", path, err)
	}
	return path, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"api_base_url": "https://api.talentloop.dev", "log_level": "debug"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.talentloop.dev", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TALENTLOOP_API_URL", "https://api.example.com")
	t.Setenv("TALENTLOOP_LOG_LEVEL", "warn")

	cfg := FromEnv()
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.CredentialsPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty is valid", Config{}, false},
		{"valid url", Config{APIBaseURL: "https://api.example.com"}, false},
		{"bad url", Config{APIBaseURL: "://nope"}, true},
		{"url without scheme", Config{APIBaseURL: "localhost:8000"}, true},
		{"valid level", Config{LogLevel: "debug"}, false},
		{"bad level", Config{LogLevel: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	merged := cfg.MergeWithDefaults(Config{APIBaseURL: "https://api.example.com"})

	assert.Equal(t, "https://api.example.com", merged.APIBaseURL)
	assert.Equal(t, "https://api.example.com", merged.LinkBaseURL)
	assert.Equal(t, "debug", merged.LogLevel)
	assert.NotEmpty(t, merged.CredentialsPath)
}

func TestMergeWithDefaults_Fallbacks(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultAPIBaseURL, merged.APIBaseURL)
	assert.Equal(t, DefaultAPIBaseURL, merged.LinkBaseURL)
	assert.Equal(t, "info", merged.LogLevel)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings understood by time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"app": {
			"client_id": "client-id-value",
			"client_secret": "client-secret-value"
		},
		"adapter": {
			"token_url": "https://login.example.com/oauth2/token",
			"api_base_url": "https://api.example.com/v1",
			"request_timeout": "30s"
		},
		"query": {
			"from": "2024-12-01T17:32:28Z",
			"to": "2024-12-30T00:23:46Z"
		},
		"poll": {
			"interval": "10s",
			"max_attempts": 20
		},
		"download": {
			"path_prefix": "results_"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "client-id-value", cfg.App.ClientID)
	assert.Equal(t, "client-secret-value", cfg.App.ClientSecret)
	assert.Equal(t, "https://login.example.com/oauth2/token", cfg.Adapter.TokenURL)
	assert.Equal(t, "https://api.example.com/v1", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "2024-12-01T17:32:28Z", cfg.Query.From)
	assert.Equal(t, "2024-12-30T00:23:46Z", cfg.Query.To)
	assert.Equal(t, 10*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 20, cfg.Poll.MaxAttempts)
	assert.Equal(t, "results_", cfg.Download.PathPrefix)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedBody(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "nanoseconds number", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

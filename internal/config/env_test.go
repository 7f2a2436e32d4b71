// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_CLIENT_ID":     "client-id-value",
		"APP_CLIENT_SECRET": "client-secret-value",

		"ADAPTER_TOKEN_URL":       "https://login.example.com/oauth2/token",
		"ADAPTER_API_BASE_URL":    "https://api.example.com/v1",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"QUERY_TEXT": `{"type":"indices"}`,
		"QUERY_FROM": "2024-12-01T17:32:28Z",
		"QUERY_TO":   "2024-12-30T00:23:46Z",

		"POLL_INTERVAL":     "10s",
		"POLL_MAX_ATTEMPTS": "20",

		"DOWNLOAD_PATH_PREFIX": "results_",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "client-id-value", cfg.App.ClientID)
	assert.Equal(t, "client-secret-value", cfg.App.ClientSecret)

	assert.Equal(t, "https://login.example.com/oauth2/token", cfg.Adapter.TokenURL)
	assert.Equal(t, "https://api.example.com/v1", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, `{"type":"indices"}`, cfg.Query.Text)
	assert.Equal(t, "2024-12-01T17:32:28Z", cfg.Query.From)
	assert.Equal(t, "2024-12-30T00:23:46Z", cfg.Query.To)

	assert.Equal(t, 10*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 20, cfg.Poll.MaxAttempts)

	assert.Equal(t, "results_", cfg.Download.PathPrefix)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_CLIENT_ID": "client-id-value",
		"POLL_INTERVAL": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "client-id-value", cfg.App.ClientID)
	assert.Empty(t, cfg.App.ClientSecret)
	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
	assert.Zero(t, cfg.Poll.MaxAttempts)
	assert.Empty(t, cfg.Adapter.TokenURL)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"POLL_INTERVAL": "not-a-duration"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

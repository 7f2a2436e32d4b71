package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns a StructuredConfig that passes validation on its own.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{ClientID: "id", ClientSecret: "secret"},
		Adapter: Adapter{
			TokenURL:       "https://login.example.com/oauth2/token",
			APIBaseURL:     "https://api.example.com/v1",
			RequestTimeout: 30 * time.Second,
		},
		Query:    Query{Text: `{"type":"indices"}`},
		Poll:     Poll{Interval: 10 * time.Second, MaxAttempts: 30},
		Download: Download{PathPrefix: "results_"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	base := validBase()
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{ClientID: "winning-id"}},
		base,
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "winning-id", cfg.App.ClientID)
	assert.Equal(t, "secret", cfg.App.ClientSecret)
	assert.Equal(t, 10*time.Second, cfg.Poll.Interval)
}

// TestBuild_EmptyFailsValidation verifies that building with no configs
// fails validation (credentials are required).
func TestBuild_EmptyFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentialsConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyEmptyFields verifies that defaults do not clobber
// values from higher-priority sources.
func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:   App{ClientID: "id", ClientSecret: "secret"},
		Query: Query{Text: `{"type":"indices"}`},
		Poll:  Poll{Interval: 3 * time.Second},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	// explicit value keeps priority over default
	assert.Equal(t, 3*time.Second, cfg.Poll.Interval)
	// untouched fields pick up defaults
	assert.Equal(t, 30, cfg.Poll.MaxAttempts)
	assert.Equal(t, "https://login.gardin.ag/oauth2/token", cfg.Adapter.TokenURL)
	assert.Equal(t, "https://api.gardin.ag/v1", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "query_api_results_", cfg.Download.PathPrefix)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate_QueryWindow(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr bool
	}{
		{
			name:  "query text set",
			query: Query{Text: `{"type":"indices"}`},
		},
		{
			name:  "valid window",
			query: Query{From: "2024-12-01T17:32:28Z", To: "2024-12-30T00:23:46Z"},
		},
		{
			name:    "missing window and text",
			query:   Query{},
			wantErr: true,
		},
		{
			name:    "unparseable from",
			query:   Query{From: "yesterday", To: "2024-12-30T00:23:46Z"},
			wantErr: true,
		},
		{
			name:    "window reversed",
			query:   Query{From: "2024-12-30T00:23:46Z", To: "2024-12-01T17:32:28Z"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			cfg.Query = tt.query

			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQueryConfigs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RequiredGroups(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing client secret",
			mutate:  func(c *StructuredConfig) { c.App.ClientSecret = "" },
			wantErr: ErrInvalidCredentialsConfigs,
		},
		{
			name:    "missing token url",
			mutate:  func(c *StructuredConfig) { c.Adapter.TokenURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *StructuredConfig) { c.Poll.Interval = 0 },
			wantErr: ErrInvalidPollConfigs,
		},
		{
			name:    "negative max attempts",
			mutate:  func(c *StructuredConfig) { c.Poll.MaxAttempts = -1 },
			wantErr: ErrInvalidPollConfigs,
		},
		{
			name:    "missing path prefix",
			mutate:  func(c *StructuredConfig) { c.Download.PathPrefix = "" },
			wantErr: ErrInvalidDownloadConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

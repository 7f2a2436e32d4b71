// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-query-export application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the API credentials the run authenticates with.
	App App `envPrefix:"APP_"`

	// Adapter holds endpoint addresses and timeout settings for the
	// outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Query describes the query document submitted to the API.
	Query Query `envPrefix:"QUERY_"`

	// Poll controls the bounded status-polling loop.
	Poll Poll `envPrefix:"POLL_"`

	// Download controls where the CSV result is written.
	Download Download `envPrefix:"DOWNLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the OAuth2 client credentials for the query API.
type App struct {
	// ClientID is the API client identifier.
	// Env: APP_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the secret paired with ClientID. Must be kept
	// confidential.
	// Env: APP_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Adapter holds network settings used by the outbound transport layer.
type Adapter struct {
	// TokenURL is the OAuth2 token endpoint address
	// (e.g. "https://login.gardin.ag/oauth2/token").
	// Env: ADAPTER_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// APIBaseURL is the base address all query API paths are resolved
	// against, including the version segment
	// (e.g. "https://api.gardin.ag/v1").
	// Env: ADAPTER_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Query describes what gets submitted. Either Text carries a complete JSON
// query document, or From/To define the time window of an indices query built
// by the client.
type Query struct {
	// Text is a complete JSON query document. Takes precedence over
	// From/To when non-empty.
	// Env: QUERY_TEXT
	Text string `env:"TEXT"`

	// From is the inclusive start of the indices query window, RFC 3339
	// (e.g. "2024-12-01T17:32:28Z").
	// Env: QUERY_FROM
	From string `env:"FROM"`

	// To is the inclusive end of the indices query window, RFC 3339.
	// Env: QUERY_TO
	To string `env:"TO"`
}

// Poll controls the fixed-interval status polling loop.
type Poll struct {
	// Interval is the wall-clock pause between consecutive status
	// fetches (e.g. "10s").
	// Env: POLL_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxAttempts bounds how many status fetches are performed before
	// the run gives up with a timeout error.
	// Env: POLL_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Download controls the local destination of the CSV result.
type Download struct {
	// PathPrefix is prepended to the job ID to form the output file name
	// ("<prefix><job_id>.csv"). May include a directory component.
	// Env: DOWNLOAD_PATH_PREFIX
	PathPrefix string `env:"PATH_PREFIX"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

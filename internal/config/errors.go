package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCredentialsConfigs indicates a missing client ID or
	// client secret.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing endpoint URLs or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidQueryConfigs indicates that neither a query document nor
	// a valid RFC 3339 time window was provided.
	ErrInvalidQueryConfigs = errors.New("invalid query configuration")
	// ErrInvalidPollConfigs indicates a non-positive poll interval or
	// attempt budget.
	ErrInvalidPollConfigs = errors.New("invalid poll configuration")
	// ErrInvalidDownloadConfigs indicates a missing download path prefix.
	ErrInvalidDownloadConfigs = errors.New("invalid download configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ClientID == "" || cfg.App.ClientSecret == "" {
		return ErrInvalidCredentialsConfigs
	}

	if cfg.Adapter.TokenURL == "" || cfg.Adapter.APIBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if err := cfg.Query.validate(); err != nil {
		return err
	}

	if cfg.Poll.Interval <= 0 || cfg.Poll.MaxAttempts <= 0 {
		return ErrInvalidPollConfigs
	}

	if cfg.Download.PathPrefix == "" {
		return ErrInvalidDownloadConfigs
	}

	return nil
}

// validate checks that the query section describes exactly one submittable
// query: either a complete JSON document, or a parseable RFC 3339 window for
// a client-built indices query.
func (q *Query) validate() error {
	if q.Text != "" {
		return nil
	}

	if q.From == "" || q.To == "" {
		return ErrInvalidQueryConfigs
	}

	from, err := time.Parse(time.RFC3339, q.From)
	if err != nil {
		return ErrInvalidQueryConfigs
	}
	to, err := time.Parse(time.RFC3339, q.To)
	if err != nil {
		return ErrInvalidQueryConfigs
	}
	if !from.Before(to) {
		return ErrInvalidQueryConfigs
	}

	return nil
}

// Window returns the parsed indices query window. Call only after a
// successful validate.
func (q *Query) Window() (from, to time.Time) {
	from, _ = time.Parse(time.RFC3339, q.From)
	to, _ = time.Parse(time.RFC3339, q.To)
	return from, to
}

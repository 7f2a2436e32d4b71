package models

import "time"

// AccessToken is the bearer credential obtained once per run from the token
// endpoint. The workflow is short-lived, so the token is never refreshed;
// ExpiresAt is informational only.
type AccessToken struct {
	// Value is the raw access token string as returned by the token
	// endpoint.
	Value string

	// TokenType is the token type reported by the token endpoint,
	// usually "Bearer".
	TokenType string

	// ExpiresAt is the moment the token stops being valid. Zero when the
	// token endpoint did not report a lifetime and none could be derived
	// from the token itself.
	ExpiresAt time.Time
}

// IsEmpty reports whether the token carries no usable value.
func (t AccessToken) IsEmpty() bool {
	return t.Value == ""
}

// ExpiresBefore reports whether the token is known to expire before deadline.
// It returns false when the expiry is unknown.
func (t AccessToken) ExpiresBefore(deadline time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(deadline)
}

// String returns the raw token value. It implements the [fmt.Stringer]
// interface.
func (t AccessToken) String() string {
	return t.Value
}

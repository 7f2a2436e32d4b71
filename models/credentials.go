package models

import (
	"encoding/base64"
	"strings"
)

// Credentials holds the OAuth2 client-credentials pair used to authenticate
// against the query API. The pair is supplied by the operator at startup and
// is never persisted or mutated during a run.
type Credentials struct {
	// ClientID is the API client identifier issued for this integration.
	ClientID string
	// ClientSecret is the secret paired with ClientID. Must be kept
	// confidential.
	ClientSecret string
}

// IsEmpty reports whether either half of the credentials pair is missing
// (after trimming surrounding whitespace).
func (c Credentials) IsEmpty() bool {
	return strings.TrimSpace(c.ClientID) == "" || strings.TrimSpace(c.ClientSecret) == ""
}

// Basic returns the value of an HTTP Basic authorization header for the
// credentials pair: base64("client_id:client_secret"). This is the form the
// token endpoint expects for the client-credentials grant.
func (c Credentials) Basic() string {
	return base64.StdEncoding.EncodeToString([]byte(c.ClientID + ":" + c.ClientSecret))
}

package models

// Wire-level response records exchanged with the query API. Kept separate
// from the domain types so the adapter can evolve with the API without
// leaking JSON tags into the service layer.

// TokenResponse is the token endpoint's answer to a client-credentials grant.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds. Some identity providers
	// omit it; the expiry is then derived from the token's exp claim.
	ExpiresIn int64 `json:"expires_in"`
	// Error is the OAuth2 error code (e.g. "invalid_client") set instead
	// of a token when the grant is rejected.
	Error string `json:"error"`
}

// SubmitQueryResponse is the submission endpoint's answer to a new query.
type SubmitQueryResponse struct {
	QueryID string `json:"queryId"`
	Status  string `json:"status"`
}

// QueryStatusResponse is the status endpoint's answer for a single job.
type QueryStatusResponse struct {
	Status string `json:"status"`
	// ResultURL is set by API versions that inline the download link into
	// the status document once the query completes. Older versions serve
	// it from the dedicated result-download endpoint instead.
	ResultURL string `json:"resultUrl"`
}

// ResultDownloadResponse is the result-download endpoint's answer: a
// pre-signed URI for the CSV content.
type ResultDownloadResponse struct {
	URI string `json:"uri"`
}

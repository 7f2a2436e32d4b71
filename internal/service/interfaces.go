// Package service implements the query-export workflow on top of the
// transport adapter: token acquisition, job submission, bounded status
// polling, and result download. Adapter transport errors are translated into
// the workflow error kinds defined in errors.go, so callers can classify a
// failed run with [errors.Is].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-query-export/models"
)

// QueryService defines the client-side contract for the query-export
// workflow. Operations are designed to run strictly in order:
// Authenticate → SubmitQuery → PollUntilTerminal → DownloadResult; Run
// performs the whole pipeline.
type QueryService interface {
	// Authenticate obtains a bearer access token for creds via the OAuth2
	// client-credentials grant. The token is held by the adapter for all
	// subsequent calls; it is never refreshed during a run.
	// Fails with [ErrNoCredentials] when either half of the pair is empty
	// and with a wrapped [ErrAuth] when the endpoint rejects the grant or
	// returns no token.
	Authenticate(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// SubmitQuery creates a query job from the given JSON query document.
	// Fails with [ErrEmptyQuery] when queryText is blank and with a
	// wrapped [ErrSubmission] when the endpoint rejects the request or
	// returns a malformed response. On success the returned job carries a
	// non-empty server-assigned ID.
	SubmitQuery(ctx context.Context, queryText string) (models.QueryJob, error)

	// PollUntilTerminal fetches the job status at a fixed wall-clock
	// interval until it becomes terminal or maxAttempts fetches have been
	// performed. Fetches are strictly sequential; the pause between them
	// is the only suspension point and honours ctx cancellation.
	// Fails with a wrapped [ErrTimeout] when the budget is exhausted and
	// with a wrapped [ErrJobFailed] when the job reaches FAILED. On
	// success the returned job is in SUCCEEDED state with its result URL
	// resolved.
	PollUntilTerminal(ctx context.Context, job models.QueryJob, interval time.Duration, maxAttempts int) (models.QueryJob, error)

	// DownloadResult streams the CSV content behind the job's result URL
	// to destinationPrefix + jobID + ".csv". The job must be in SUCCEEDED
	// state with a non-empty result URL. Fails with a wrapped
	// [ErrDownload] on transport or filesystem failure.
	DownloadResult(ctx context.Context, job models.QueryJob, destinationPrefix string) (models.DownloadedArtifact, error)

	// Run executes the full pipeline in order with the service's
	// configured credentials, query, polling budget, and destination
	// prefix, stopping at the first error.
	Run(ctx context.Context) (models.DownloadedArtifact, error)
}

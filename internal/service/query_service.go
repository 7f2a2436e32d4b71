package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-query-export/internal/adapter"
	"github.com/MKhiriev/go-query-export/internal/logger"
	"github.com/MKhiriev/go-query-export/models"
)

// RunParams carries everything a full pipeline run needs. Assembled once at
// startup from the merged configuration and immutable afterwards.
type RunParams struct {
	// Credentials is the client-credentials pair used by Authenticate.
	Credentials models.Credentials
	// QueryText is the JSON query document submitted by Run.
	QueryText string
	// PollInterval is the pause between consecutive status fetches.
	PollInterval time.Duration
	// MaxPollAttempts bounds the number of status fetches.
	MaxPollAttempts int
	// DestinationPrefix is prepended to the job ID to form the CSV
	// output path.
	DestinationPrefix string
}

type queryService struct {
	api    adapter.QueryAPI
	params RunParams

	logger *logger.Logger
}

// NewQueryService creates the workflow service over the given transport
// adapter. params configures the Run pipeline; the individual operations can
// also be called directly with their own arguments.
func NewQueryService(api adapter.QueryAPI, params RunParams, logger *logger.Logger) QueryService {
	return &queryService{api: api, params: params, logger: logger}
}

// Authenticate implements [QueryService].
func (s *queryService) Authenticate(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	if creds.IsEmpty() {
		return models.AccessToken{}, ErrNoCredentials
	}

	token, err := s.api.Authenticate(ctx, creds)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	s.logger.Info().Time("expires_at", token.ExpiresAt).Msg("access token obtained")
	return token, nil
}

// SubmitQuery implements [QueryService].
func (s *queryService) SubmitQuery(ctx context.Context, queryText string) (models.QueryJob, error) {
	if strings.TrimSpace(queryText) == "" {
		return models.QueryJob{}, ErrEmptyQuery
	}

	job, err := s.api.SubmitQuery(ctx, queryText)
	if err != nil {
		return models.QueryJob{}, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	s.logger.Info().Str("job_id", job.JobID).Str("status", string(job.Status)).Msg("query submitted")
	return job, nil
}

// PollUntilTerminal implements [QueryService]. Status fetches are strictly
// sequential; the inter-attempt pause is the only suspension point of the
// whole workflow and honours ctx cancellation.
func (s *queryService) PollUntilTerminal(ctx context.Context, job models.QueryJob, interval time.Duration, maxAttempts int) (models.QueryJob, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, inlineURL, err := s.api.JobStatus(ctx, job.JobID)
		if err != nil {
			return job, fmt.Errorf("job status fetch: %w", err)
		}
		job.Status = status

		switch status {
		case models.StatusFailed:
			return job, fmt.Errorf("%w: job %s", ErrJobFailed, job.JobID)

		case models.StatusSucceeded:
			job.ResultURL = inlineURL
			if job.ResultURL == "" {
				// older API versions serve the link from a dedicated endpoint
				job.ResultURL, err = s.api.ResultURL(ctx, job.JobID)
				if err != nil {
					return job, fmt.Errorf("resolve result url: %w", err)
				}
			}
			s.logger.Info().Str("job_id", job.JobID).Int("attempts", attempt).Msg("query completed")
			return job, nil
		}

		if attempt == maxAttempts {
			break
		}

		s.logger.Debug().
			Str("job_id", job.JobID).
			Str("status", string(status)).
			Dur("interval", interval).
			Msg("waiting for query to complete")

		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-time.After(interval):
		}
	}

	return job, fmt.Errorf("%w: job %s after %d attempts", ErrTimeout, job.JobID, maxAttempts)
}

// DownloadResult implements [QueryService]. The output path is deterministic
// (prefix + job ID + ".csv"), so downloading the same completed job twice
// produces byte-identical files.
func (s *queryService) DownloadResult(ctx context.Context, job models.QueryJob, destinationPrefix string) (models.DownloadedArtifact, error) {
	if job.Status != models.StatusSucceeded {
		return models.DownloadedArtifact{}, ErrJobNotSucceeded
	}
	if job.ResultURL == "" {
		return models.DownloadedArtifact{}, ErrNoResultURL
	}

	localPath := destinationPrefix + job.JobID + ".csv"
	s.logger.Info().Str("job_id", job.JobID).Str("path", localPath).Msg("downloading csv result")

	written, err := s.api.FetchResult(ctx, job.ResultURL, localPath)
	if err != nil {
		return models.DownloadedArtifact{}, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	return models.DownloadedArtifact{LocalPath: localPath, ByteSize: written}, nil
}

// Run implements [QueryService]. It executes the fixed pipeline
// authenticate → submit → poll → download with the configured parameters,
// stopping at the first error.
func (s *queryService) Run(ctx context.Context) (models.DownloadedArtifact, error) {
	token, err := s.Authenticate(ctx, s.params.Credentials)
	if err != nil {
		return models.DownloadedArtifact{}, err
	}

	// the token is used as-is for the whole run; warn when the polling
	// budget is known to outlive it
	pollWindow := s.params.PollInterval * time.Duration(s.params.MaxPollAttempts)
	if token.ExpiresBefore(time.Now().Add(pollWindow)) {
		s.logger.Warn().
			Time("expires_at", token.ExpiresAt).
			Dur("poll_window", pollWindow).
			Msg("access token may expire before polling completes")
	}

	job, err := s.SubmitQuery(ctx, s.params.QueryText)
	if err != nil {
		return models.DownloadedArtifact{}, err
	}

	job, err = s.PollUntilTerminal(ctx, job, s.params.PollInterval, s.params.MaxPollAttempts)
	if err != nil {
		return models.DownloadedArtifact{}, err
	}

	return s.DownloadResult(ctx, job, s.params.DestinationPrefix)
}

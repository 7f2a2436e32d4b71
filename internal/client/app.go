package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-query-export/internal/config"
	"github.com/MKhiriev/go-query-export/internal/logger"
	"github.com/MKhiriev/go-query-export/internal/service"
	"github.com/MKhiriev/go-query-export/models"
)

var _ Client = (*App)(nil)

// App is the one-shot query-export runtime: it runs the workflow pipeline
// once and exits.
type App struct {
	service service.QueryService
	logger  *logger.Logger
}

// NewApp assembles the application from an already-constructed workflow
// service.
func NewApp(svc service.QueryService, log *logger.Logger) (*App, error) {
	if svc == nil {
		return nil, fmt.Errorf("query service is required")
	}

	return &App{service: svc, logger: log}, nil
}

// Run executes the pipeline once and reports the downloaded artifact.
// It blocks until the run finishes or fails.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	artifact, err := a.service.Run(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("path", artifact.LocalPath).
		Int64("bytes", artifact.ByteSize).
		Msg("download completed")

	return nil
}

// RunParamsFromConfig maps the merged configuration onto workflow run
// parameters, building the indices query document from the configured time
// window when no explicit query text was provided.
func RunParamsFromConfig(cfg *config.StructuredConfig) (service.RunParams, error) {
	queryText := cfg.Query.Text
	if queryText == "" {
		from, to := cfg.Query.Window()
		var err error
		queryText, err = models.IndicesQuery(from, to)
		if err != nil {
			return service.RunParams{}, fmt.Errorf("build indices query: %w", err)
		}
	}

	return service.RunParams{
		Credentials: models.Credentials{
			ClientID:     cfg.App.ClientID,
			ClientSecret: cfg.App.ClientSecret,
		},
		QueryText:         queryText,
		PollInterval:      cfg.Poll.Interval,
		MaxPollAttempts:   cfg.Poll.MaxAttempts,
		DestinationPrefix: cfg.Download.PathPrefix,
	}, nil
}

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-query-export/internal/config"
	"github.com/MKhiriev/go-query-export/internal/logger"
	"github.com/MKhiriev/go-query-export/internal/utils"
	"github.com/MKhiriev/go-query-export/models"
)

const requestIDHeader = "X-Request-ID"

// errorBodyLimit caps how much of a failed download response is read back for
// the error message.
const errorBodyLimit = 4 << 10

type httpQueryAPI struct {
	client   *utils.HTTPClient
	tokenURL string
	token    string

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPQueryAPI constructs an HTTP/REST implementation of [QueryAPI].
// It normalises and validates the token and API base URLs from adapterCfg,
// and configures the underlying HTTP client with the resolved base URL and
// request timeout. All API paths are resolved against adapterCfg.APIBaseURL;
// the token endpoint is addressed absolutely because identity providers
// commonly live on a separate host.
//
// Returns an error if either URL is empty or cannot be parsed.
func NewHTTPQueryAPI(adapterCfg config.Adapter, logger *logger.Logger) (QueryAPI, error) {
	client := utils.NewHTTPClient()

	baseURL, err := normalizeBaseURL(adapterCfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api base url: %w", err)
	}

	tokenURL, err := normalizeBaseURL(adapterCfg.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter token url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpQueryAPI{
		client:   client,
		tokenURL: tokenURL,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [QueryAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpQueryAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [QueryAPI]. It returns the bearer token currently held by
// the adapter, or an empty string if none has been set.
func (h *httpQueryAPI) Token() string {
	return h.token
}

// requestID generates a fresh correlation ID and logs it together with the
// action name, mirroring the request on the server side.
func (h *httpQueryAPI) requestID(action string) string {
	id := h.ids.Generate()
	h.logger.Debug().Str("request_id", id).Str("action", action).Msg("api request")
	return id
}

// Authenticate implements [QueryAPI]. It POSTs a form-encoded
// client-credentials grant to the token endpoint with the credentials pair in
// a Basic authorization header. On success the access token is stored via
// SetToken and returned with its expiry resolved from expires_in, falling
// back to the token's own exp claim when the endpoint omits a lifetime.
func (h *httpQueryAPI) Authenticate(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.requestID("authenticate")).
		SetHeader("Authorization", "Basic "+creds.Basic()).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tokenResp).
		Post(h.tokenURL)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}

	if tokenResp.AccessToken == "" {
		if tokenResp.Error != "" {
			return models.AccessToken{}, fmt.Errorf("%w: token endpoint returned %q", ErrMalformedResponse, tokenResp.Error)
		}
		return models.AccessToken{}, fmt.Errorf("%w: no access_token in token response", ErrMalformedResponse)
	}

	token := models.AccessToken{
		Value:     tokenResp.AccessToken,
		TokenType: tokenResp.TokenType,
	}
	if tokenResp.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	} else if exp, expErr := utils.TokenExpiry(token.Value); expErr == nil {
		token.ExpiresAt = exp
	}

	h.SetToken(token.Value)
	return token, nil
}

// SubmitQuery implements [QueryAPI]. It POSTs the JSON query document to
// POST /query and returns a [models.QueryJob] carrying the server-assigned
// job ID. A submission response without a job ID is reported as
// [ErrMalformedResponse]; a missing initial status defaults to PENDING.
func (h *httpQueryAPI) SubmitQuery(ctx context.Context, queryText string) (models.QueryJob, error) {
	var submitResp models.SubmitQueryResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.requestID("submit query")).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.token).
		SetBody([]byte(queryText)).
		SetResult(&submitResp).
		Post("/query")
	if err != nil {
		return models.QueryJob{}, fmt.Errorf("submit query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QueryJob{}, err
	}

	if submitResp.QueryID == "" {
		return models.QueryJob{}, fmt.Errorf("%w: no queryId in submission response", ErrMalformedResponse)
	}

	status := models.StatusPending
	if submitResp.Status != "" {
		status, err = normalizeStatus(submitResp.Status)
		if err != nil {
			return models.QueryJob{}, err
		}
	}

	return models.QueryJob{
		JobID:     submitResp.QueryID,
		QueryText: queryText,
		Status:    status,
	}, nil
}

// JobStatus implements [QueryAPI]. It GETs /query/{id}/status and returns
// the normalised status plus the inline result URL when the status document
// carries one.
func (h *httpQueryAPI) JobStatus(ctx context.Context, jobID string) (models.QueryStatus, string, error) {
	var statusResp models.QueryStatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.requestID("job status")).
		SetAuthToken(h.token).
		SetResult(&statusResp).
		Get("/query/" + url.PathEscape(jobID) + "/status")
	if err != nil {
		return "", "", fmt.Errorf("job status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", "", err
	}

	status, err := normalizeStatus(statusResp.Status)
	if err != nil {
		return "", "", err
	}

	return status, statusResp.ResultURL, nil
}

// ResultURL implements [QueryAPI]. It GETs /query/{id}/result/download and
// returns the pre-signed URI from the response.
func (h *httpQueryAPI) ResultURL(ctx context.Context, jobID string) (string, error) {
	var downloadResp models.ResultDownloadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.requestID("result url")).
		SetAuthToken(h.token).
		SetResult(&downloadResp).
		Get("/query/" + url.PathEscape(jobID) + "/result/download")
	if err != nil {
		return "", fmt.Errorf("result url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if downloadResp.URI == "" {
		return "", fmt.Errorf("%w: no uri in result download response", ErrMalformedResponse)
	}

	return downloadResp.URI, nil
}

// FetchResult implements [QueryAPI]. It streams the content behind resultURL
// into the file at localPath. The link is pre-signed, so no Authorization
// header is attached. The file is created with truncation, which keeps repeat
// downloads of the same result byte-identical.
func (h *httpQueryAPI) FetchResult(ctx context.Context, resultURL, localPath string) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(resultURL)
	if err != nil {
		return 0, fmt.Errorf("fetch result request: %w", err)
	}

	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(body, errorBodyLimit))
		return 0, mapHTTPStatus(resp.StatusCode(), string(errBody))
	}

	out, err := os.Create(localPath)
	if err != nil {
		return 0, fmt.Errorf("create result file: %w", err)
	}

	written, err := io.Copy(out, body)
	if err != nil {
		_ = out.Close()
		return 0, fmt.Errorf("write result file: %w", err)
	}
	if err = out.Close(); err != nil {
		return 0, fmt.Errorf("close result file: %w", err)
	}

	return written, nil
}

// normalizeStatus maps the server's raw status vocabulary onto the canonical
// [models.QueryStatus] enum. The server distinguishes SUBMITTED from
// IN_PROGRESS/RUNNING and FAILED from CANCELLED; the workflow does not.
func normalizeStatus(raw string) (models.QueryStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SUBMITTED", "PENDING":
		return models.StatusPending, nil
	case "IN_PROGRESS", "RUNNING":
		return models.StatusRunning, nil
	case "COMPLETED", "SUCCEEDED":
		return models.StatusSucceeded, nil
	case "FAILED", "CANCELLED":
		return models.StatusFailed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

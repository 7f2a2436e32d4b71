// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the hosted query API.
//
// The primary abstraction is [QueryAPI], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPQueryAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for
// 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-query-export/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/query_api_mock.go -package=mock

// QueryAPI defines transport-agnostic communication with the query API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type QueryAPI interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Authenticate.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Authenticate performs the OAuth2 client-credentials grant against
	// the token endpoint. On success it stores the returned bearer token
	// via SetToken and returns the full [models.AccessToken]. Returns an
	// error if the request fails, the server responds with a non-2xx
	// status, or the response carries no access token.
	Authenticate(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// SubmitQuery creates a new query job from the given JSON query
	// document. Returns a [models.QueryJob] carrying the server-assigned
	// job ID and normalised initial status. Returns an error if the
	// request fails, the server responds with a non-2xx status, or the
	// response carries no job ID.
	SubmitQuery(ctx context.Context, queryText string) (models.QueryJob, error)

	// JobStatus fetches the current status of the job identified by
	// jobID. The server's raw status is normalised to the
	// [models.QueryStatus] enum; an unrecognised raw status is reported
	// as an error. When the status document inlines a result URL it is
	// returned alongside the status.
	JobStatus(ctx context.Context, jobID string) (models.QueryStatus, string, error)

	// ResultURL fetches the pre-signed download URI for the completed
	// job identified by jobID. Returns an error if the request fails or
	// the response carries no URI.
	ResultURL(ctx context.Context, jobID string) (string, error)

	// FetchResult streams the content behind resultURL (a pre-signed
	// link, requested without an Authorization header) into the file at
	// localPath, truncating any previous content. Returns the number of
	// bytes written.
	FetchResult(ctx context.Context, resultURL, localPath string) (int64, error)
}

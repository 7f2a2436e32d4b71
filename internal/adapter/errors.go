package adapter

import "errors"

// Transport-level sentinel errors produced by mapHTTPError. The service layer
// matches on them with errors.Is and translates them into workflow error
// kinds.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrMalformedResponse indicates a 2xx response whose body is missing
	// a required field (token, job ID, status, or download URI).
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnknownStatus indicates the status endpoint reported a job
	// status outside the documented set.
	ErrUnknownStatus = errors.New("unknown job status")
)

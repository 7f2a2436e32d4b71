package service

import "errors"

// Workflow error kinds. Each corresponds to exactly one stage of the
// pipeline failing; none of them is retried automatically.
var (
	ErrAuth       = errors.New("authentication failed")
	ErrSubmission = errors.New("query submission failed")
	ErrTimeout    = errors.New("polling attempts exhausted before job completion")
	ErrJobFailed  = errors.New("query job failed")
	ErrDownload   = errors.New("result download failed")
)

// Input validation errors surfaced before any request is made.
var (
	ErrNoCredentials   = errors.New("client id and client secret are required")
	ErrEmptyQuery      = errors.New("empty query provided")
	ErrJobNotSucceeded = errors.New("job has not succeeded")
	ErrNoResultURL     = errors.New("job has no result url")
)

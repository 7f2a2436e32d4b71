package models

import (
	"encoding/json"
	"time"
)

// QueryStatus is the canonical lifecycle state of a query job as seen by the
// client. The server reports a wider set of raw statuses; the adapter
// normalises them to this enum before they reach the service layer.
type QueryStatus string

const (
	// StatusPending means the job has been accepted but processing has not
	// started yet.
	StatusPending QueryStatus = "PENDING"
	// StatusRunning means the job is being processed.
	StatusRunning QueryStatus = "RUNNING"
	// StatusSucceeded means the job finished and a result is available for
	// download. Terminal.
	StatusSucceeded QueryStatus = "SUCCEEDED"
	// StatusFailed means the job finished without producing a result
	// (including server-side cancellation). Terminal.
	StatusFailed QueryStatus = "FAILED"
)

// IsTerminal reports whether no further status transitions can occur.
func (s QueryStatus) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// QueryJob is a server-side asynchronous unit of work representing a
// submitted query. JobID is assigned by the server on submission; Status and
// ResultURL reflect the server's last reported state and are updated only by
// re-fetching, never mutated locally.
type QueryJob struct {
	// JobID is the server-assigned identifier used in all subsequent
	// status and result requests.
	JobID string

	// QueryText is the JSON query document the job was created from.
	QueryText string

	// Status is the last status reported by the server for this job.
	Status QueryStatus

	// ResultURL is the pre-signed download link for the CSV result.
	// Populated only after the job has been observed in SUCCEEDED state.
	ResultURL string
}

// QueryFilters is the time window a query is restricted to.
type QueryFilters struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Query is a typed query document accepted by the submission endpoint.
type Query struct {
	Type    string       `json:"type"`
	Filters QueryFilters `json:"filters"`
}

// IndicesQuery builds the JSON text of an indices query covering the
// [from, to] window. It is a convenience for the most common query shape;
// callers with other needs can pass any JSON document as query text.
func IndicesQuery(from, to time.Time) (string, error) {
	b, err := json.Marshal(Query{
		Type:    "indices",
		Filters: QueryFilters{From: from.UTC(), To: to.UTC()},
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

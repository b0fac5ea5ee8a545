package service

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when no credential is present.
// It is raised before any network dispatch.
var ErrNotAuthenticated = errors.New("not authenticated (run: tdo login)")

// ValidationError indicates a required field was missing or a response
// body could not be parsed. Raised locally, never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NetworkError indicates a transport-level failure: no HTTP response was
// received at all. Its status sentinel is 0.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Status returns the sentinel status code 0.
func (e *NetworkError) Status() int { return 0 }

// APIError indicates the server responded with a non-success HTTP status.
// Message is extracted from the response body when possible.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

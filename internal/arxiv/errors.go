// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidInput marks locally detected input problems. No request was sent.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream marks transport failures, non-2xx responses and unparseable feeds.
	ErrUpstream = errors.New("upstream error")

	// ErrNotFound marks an id lookup that matched no paper.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a bad search parameter. Field names match the
// tool argument names (date_from, date_to, sort_by, sort_order).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// UpstreamError reports a failed request to the arXiv API. StatusCode is zero
// for transport failures, in which case Cause holds the transport error.
type UpstreamError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("arXiv API error (status %d): %s", e.StatusCode, e.Message)
	}
	switch {
	case e.Cause != nil && e.Message != "":
		return fmt.Sprintf("arXiv API request failed: %s: %v", e.Message, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("arXiv API request failed: %v", e.Cause)
	}
	return "arXiv API request failed: " + e.Message
}

// Is makes errors.Is(err, ErrUpstream) hold for any UpstreamError.
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func (e *UpstreamError) Unwrap() error { return e.Cause }

// MalformedResponseError reports a response body that did not decode into an
// Atom feed. Callers treat it like UpstreamError.
type MalformedResponseError struct {
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid response from arXiv API: %v", e.Cause)
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrUpstream }

func (e *MalformedResponseError) Unwrap() error { return e.Cause }

// NotFoundError reports that an id lookup returned no entries.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return "paper not found: " + e.ID }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

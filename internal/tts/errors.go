package tts

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying upstream failures. Surfaces match on these
// with errors.Is to choose an HTTP status or exit code.
var (
	// ErrUnreachable indicates the provider could not be reached or did not
	// answer in time: network failures, timeouts, and 5xx responses.
	ErrUnreachable = errors.New("provider unreachable")

	// ErrRateLimited indicates the provider rejected the call with 429.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrAuthRejected indicates the provider rejected the credential.
	ErrAuthRejected = errors.New("provider rejected credentials")

	// ErrBadRequest indicates the provider rejected the request itself,
	// e.g. text too long or an identifier it does not recognize.
	ErrBadRequest = errors.New("provider rejected request")
)

// UpstreamError describes a failed synthesis call. It wraps one of the
// sentinel errors above so callers can classify with errors.Is while the
// message carries provider detail for logs.
type UpstreamError struct {
	Provider string // provider identifier, e.g. "deepgram"
	Status   int    // HTTP status from the provider, 0 for network failures
	Message  string // human-readable condition, no stack detail
	Err      error  // sentinel classification
}

// NewUpstreamError builds an UpstreamError wrapping the given sentinel.
func NewUpstreamError(provider string, status int, message string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Status: status, Message: message, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

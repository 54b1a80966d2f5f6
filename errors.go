package rollbar

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError is returned when no HTTP response was obtained, for example
// on a DNS failure, a refused connection or a timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("POST item failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is returned when the Rollbar API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("POST item failed with status code %d: %s", e.StatusCode, e.Message)
}

// RateLimitError is returned when every attempt of a report was rejected
// with HTTP 429 and the retry budget is spent.
type RateLimitError struct {
	Attempts int
	Err      *HTTPError
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err is, or wraps, an HTTP 429 response.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}

// StatusCode returns the HTTP status code carried by err, or 0 when err
// does not wrap an [HTTPError].
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

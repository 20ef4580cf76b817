package client

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx response from the review feed.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, msg)
}

// Retryable reports whether the same page may succeed on a later request.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func asHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}

// IsStatus reports whether err wraps an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	httpErr, ok := asHTTPError(err)
	return ok && httpErr.StatusCode == code
}

// IsUnauthorized reports whether the feed rejected the token.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// IsRetryable reports whether err is worth retrying. Errors that are not
// HTTP responses (timeouts, refused connections, bad payloads) are.
func IsRetryable(err error) bool {
	if httpErr, ok := asHTTPError(err); ok {
		return httpErr.Retryable()
	}
	return err != nil
}

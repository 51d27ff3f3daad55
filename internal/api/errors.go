package api

import (
	"fmt"
	"time"
)

// TransportError wraps a failure below the HTTP layer: connection refused,
// DNS resolution, request timeout. The service was never reached, or never
// answered.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RequestError is a non-2xx response from the service. Body is kept
// verbatim for caller inspection; the client never retries these.
type RequestError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: service returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// WaitTimeoutError means WaitForScan exhausted its budget without observing
// a terminal status.
type WaitTimeoutError struct {
	ScanID  string
	Timeout time.Duration
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("scan %s did not complete within %s", e.ScanID, e.Timeout)
}

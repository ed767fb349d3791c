package openapi

import (
	"fmt"
	"strings"
)

// TransportError is a failure below the HTTP layer: dial, TLS, timeout,
// cancellation or a broken response body.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a response with a status outside 200-299.
type APIError struct {
	StatusCode int
	Body       string // truncated to maxErrorBody

	// Filled when the body is an error envelope.
	TrackingID string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "API error (status %d)", e.StatusCode)
	switch {
	case e.Message != "":
		b.WriteString(": ")
		if e.Code != "" {
			b.WriteString(e.Code + ": ")
		}
		b.WriteString(e.Message)
	case e.Body != "":
		b.WriteString(": " + e.Body)
	}
	if e.TrackingID != "" {
		b.WriteString(" (tracking id " + e.TrackingID + ")")
	}
	return b.String()
}

// MappingError is a payload that could not be decoded into Target.
type MappingError struct {
	Target string
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Target, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

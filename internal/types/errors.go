package types

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error represents a weenect API error response (any 4xx or 5xx status).
// Body holds the decoded JSON error payload, or a
// map[string]interface{}{"message": <raw text>} fallback when the
// response was not JSON. The library does not subclass per status code;
// callers inspect StatusCode themselves.
type Error struct {
	StatusCode int
	Body       interface{}
}

func (e *Error) Error() string {
	if body, ok := e.Body.(map[string]interface{}); ok {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return fmt.Sprintf("weenect API error: status %d: %s", e.StatusCode, msg)
		}
	}
	return fmt.Sprintf("weenect API error: status %d", e.StatusCode)
}

// ConnectionError represents a failure to talk to the weenect API:
// a timeout, a DNS or transport failure, or an empty login response.
// Err, when present, chains the underlying transport failure.
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout, following the
// net.Error convention.
func (e *ConnectionError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// Error messages for the two ConnectionError kinds.
const (
	TimeoutMessage       = "timeout occurred while connecting to the weenect API"
	CommunicationMessage = "error occurred while communicating with the weenect API"
	AuthEmptyMessage     = "error occurred while authenticating with the weenect API"
)

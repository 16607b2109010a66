package weenect

import (
	"errors"

	"github.com/weenect-community/weenect-go/internal/types"
)

// Error represents a weenect API error response (any 4xx/5xx status).
type Error = types.Error

// ConnectionError represents a transport-level failure: timeout, DNS
// failure, connection error, or an empty login response.
type ConnectionError = types.ConnectionError

// AsAPIError returns the API error carried by err, if any.
func AsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsConnectionError checks if error is transport related
func IsConnectionError(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsTimeout checks if error is a request timeout
func IsTimeout(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr) && connErr.Timeout()
}

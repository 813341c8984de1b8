package steamapi

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrAPIKeyRequired indicates the client was constructed without an API key
	ErrAPIKeyRequired = errors.New("steamapi: API key is required")
	// ErrRateLimited indicates the API rejected the request with HTTP 429
	ErrRateLimited = errors.New("steamapi: rate limited")
)

// APIError represents a failed SteamAPIs request: a non-success HTTP status,
// a transport failure, or an unparseable response body.
type APIError struct {
	// StatusCode is the HTTP status of the response, or 0 when the request
	// never produced one (connection failure, timeout).
	StatusCode int
	// Body holds the raw response body for status errors.
	Body string
	// Err holds the underlying cause for transport and decode failures.
	Err error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("steamapi: request failed: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("steamapi: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("steamapi: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap returns the underlying cause, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsServerError checks if the error indicates a server-side failure
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

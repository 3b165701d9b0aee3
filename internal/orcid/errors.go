package orcid

import (
	"errors"
	"fmt"
)

// Common errors returned by the ORCID client.
var (
	// ErrNotFound indicates the ORCID iD or work was not found.
	ErrNotFound = errors.New("not found on ORCID")

	// ErrAuthError indicates an authentication error (missing/invalid token).
	ErrAuthError = errors.New("ORCID authentication error")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("ORCID rate limit exceeded")

	// ErrAPIError indicates a general API error.
	ErrAPIError = errors.New("ORCID API error")
)

// APIError represents an error response from the ORCID public API.
type APIError struct {
	StatusCode int
	Message    string
	ORCIDID    string // For context in iD-related errors
}

func (e *APIError) Error() string {
	if e.ORCIDID != "" {
		return fmt.Sprintf("ORCID API error (status %d): %s (iD: %s)", e.StatusCode, e.Message, e.ORCIDID)
	}
	return fmt.Sprintf("ORCID API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error indicates a missing iD or work.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsAuthError returns true if the error indicates an authentication problem.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrAuthError) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

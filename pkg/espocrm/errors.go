package espocrm

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrBodyRequired        = errors.New("request body is required")
	ErrResponseTooLarge    = errors.New("response body exceeds the configured size limit")
)

// UnexpectedStatusError reports a response status other than 200 OK. The
// client makes no distinction between 4xx and 5xx; the actual status code,
// the server's X-Status-Reason header (when present), and the raw body are
// available for inspection.
type UnexpectedStatusError struct {
	StatusCode int
	Reason     string
	Body       []byte
}

// Error implements the error interface.
func (e *UnexpectedStatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Reason)
	}

	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, statusCode int) bool {
	statusErr := &UnexpectedStatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == statusCode
	}

	return false
}

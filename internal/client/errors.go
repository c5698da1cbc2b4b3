package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTransport marks failures where no usable response arrived: connection errors,
// timeouts, cancellation and undecodable success bodies.
var ErrTransport = errors.New("client: transport failure")

// APIError is a non-2xx response. Code and Message come from the {code, message} body
// and are zero when the server sent none.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("api error: HTTP %d %s", e.Status, http.StatusText(e.Status))
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsUnauthorized reports a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// IsValidation reports a 4xx response other than 401.
func IsValidation(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Status >= 400 && apiErr.Status < 500 && apiErr.Status != http.StatusUnauthorized
}

// IsServerFault reports a 5xx response.
func IsServerFault(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Status >= 500
}

// IsNotFound reports a 404 response.
func IsNotFound(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// Message returns the server-supplied message of err, or "" when there is none.
func Message(err error) string {
	if apiErr, ok := asAPIError(err); ok {
		return apiErr.Message
	}
	return ""
}

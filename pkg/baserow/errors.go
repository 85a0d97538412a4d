package baserow

import (
	"errors"
	"fmt"
)

// Common errors returned by client operations.
var (
	// ErrMissingToken is returned when the client is constructed without an API token.
	ErrMissingToken = errors.New("baserow: API token is required")

	// ErrMissingTable is returned when an operation is issued without a table identifier.
	ErrMissingTable = errors.New("baserow: table identifier is required")
)

// APIError is a non-2xx response from the row API.
type APIError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("baserow: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

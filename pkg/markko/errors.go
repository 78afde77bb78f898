package markko

import "fmt"

// APIError is an error reported by the marketplace API, either via an
// error envelope in a 2xx body or a non-2xx HTTP status. Code is the
// application-specific code from the envelope when present, otherwise
// the HTTP status. Errors carries field-level validation messages.
type APIError struct {
	Message string
	Code    int
	Errors  map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("markko: %s (code %d)", e.Message, e.Code)
}

// IsValidation reports whether the error carries field-level validation
// messages.
func (e *APIError) IsValidation() bool {
	return len(e.Errors) > 0
}

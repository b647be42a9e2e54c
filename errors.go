package trackbear

import "fmt"

// ConfigurationError reports a client that cannot be constructed, most
// commonly a missing API token. It is never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

// FormatError reports a caller-supplied date filter that does not match the
// required YYYY-MM-DD pattern. It is raised before any network call.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be YYYY-MM-DD", e.Field, e.Value)
}

// APIResponseError reports a call the service explicitly answered with
// success=false. It carries the HTTP status alongside the service's own error
// code and message.
type APIResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIResponseError) Error() string {
	return fmt.Sprintf("API Failure (%d) %s - %s", e.StatusCode, e.Code, e.Message)
}

package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidFilterError   = "invalid_filter"
	HttpInvalidQueryError    = "invalid_query"
	HttpInvalidCSVError      = "invalid_csv"
	HttpPayloadTooLargeError = "payload_too_large"
	HttpUnavailableError     = "unavailable"
)

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

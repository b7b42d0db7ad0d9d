package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidQueryError     = "invalid_query"
	HttpPartitionNotFound     = "partition_not_found"
	HttpStoreUnavailableError = "store_unavailable"
)

// ErrorResponse is the error response body for threshold API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

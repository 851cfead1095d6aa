package dto

// ErrorResponse is the error body returned by every failing endpoint.
// The frontend only ever shows a generic failure indicator, so the message
// stays short.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// SuccessResponse is the minimal acknowledgement body used by write
// endpoints that do not echo a row (attendance upsert, grading).
type SuccessResponse struct {
	Success bool `json:"success"`
}

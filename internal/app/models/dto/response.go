package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body: a single message and the
// matching HTTP status on the wire.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Pagination carries the listing envelope fields shared by every paginated
// endpoint: the current 1-based page, ceil(total_items/limit) pages, and the
// total matching row count.
type Pagination struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

// Package httperror defines the body of error responses.
package httperror

// Error is the body of every error response.
type Error struct {
	Message string            `json:"error" example:"there is no category matching your query"`
	Details map[string]string `json:"details,omitempty"` // Problems per field for validation errors
}

// New returns the response body for an error.
func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// NewFromString returns the response body for an error message.
func NewFromString(msg string) Error {
	return Error{
		Message: msg,
	}
}

package errs

import (
	"fmt"
	"net/http"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

// NewValidationError reports a single invalid field in the same shape as validator errors.
func NewValidationError(field, reason string) *HttpError {
	return &HttpError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Data:    map[string]any{field: reason},
	}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

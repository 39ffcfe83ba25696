package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the JSON error body written by every route: {"error": "..."}.
// Status is carried alongside for the response code and is never serialized.
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError(errors []FieldError) *APIError {
	message := "Validation failed"
	if len(errors) > 0 {
		message = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			message = fmt.Sprintf("%s (and %d more errors)", message, len(errors)-1)
		}
	}
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
		Details: errors,
	}
}

func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "Internal server error"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

func NewRateLimitError(retryAfter int) *APIError {
	return &APIError{
		Status:  http.StatusTooManyRequests,
		Message: fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter),
	}
}

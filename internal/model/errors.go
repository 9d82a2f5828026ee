package model

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a request failure translated into the uniform JSON
// error envelope. Message is the user-facing description; Detail carries an
// optional diagnostic cause and never changes the response shape.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a {"success": false, ...} JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Detail  string `json:"error,omitempty"`
	}{
		Success: false,
		Message: e.Message,
		Detail:  e.Detail,
	})
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Common error constructors

func NewUnauthorizedError(message, detail string) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: message,
		Detail:  detail,
	}
}

func NewForbiddenError(message string) *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: message,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError(fields []FieldError) *APIError {
	detail := ""
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
		}
		detail = strings.Join(parts, "; ")
	}
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Please provide all required fields",
		Detail:  detail,
	}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

func NewStorageError(message string, cause error) *APIError {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
		Detail:  detail,
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openhire/jobboard/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("role must be recruiter or jobseeker")
)

// ===== Job Errors =====
var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("not authorized to delete this job")
)

// ValidationError reports which required input fields are missing or
// malformed. Handlers translate it into a 400 response listing the fields.
type ValidationError struct {
	Fields []model.FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err as a *ValidationError, or returns nil.
func AsValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

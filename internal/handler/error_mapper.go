package handler

import (
	"errors"

	"github.com/openhire/jobboard/internal/model"
	"github.com/openhire/jobboard/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	if verr := service.AsValidationError(err); verr != nil {
		return model.NewValidationError(verr.Fields)
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError("Invalid credentials", "")

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotJobOwner):
		return model.NewForbiddenError("You can only delete your own job postings")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("User")
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("Job")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError("An account with this email already exists")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrInvalidRole):
		return model.NewBadRequestError("Role must be recruiter or jobseeker")

	// ===== Everything else → 500 =====
	default:
		return model.NewStorageError("An unexpected error occurred", err)
	}
}

package response

import (
	"errors"
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/attendance"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/auth"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors: violated preconditions the caller has
	// to resolve, never retried automatically
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrBreakAlreadyStarted),
		errors.Is(err, attendance.ErrBreakNotStarted),
		errors.Is(err, attendance.ErrBreakAlreadyEnded),
		errors.Is(err, attendance.ErrBreakTooLong),
		errors.Is(err, attendance.ErrBreakInProgress),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrNoRecordFound),
		errors.Is(err, attendance.ErrDateRequired):
		BadRequest(w, err.Error(), nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, task.ErrAssigneeNotFound),
		errors.Is(err, task.ErrNotCompleted),
		errors.Is(err, task.ErrSelfApproval):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/auth"
	"github.com/cmlabs-hris/leave-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave import domain errors
	case errors.Is(err, leaveimport.ErrTooManyRows),
		errors.Is(err, leaveimport.ErrNoDataRows),
		errors.Is(err, leaveimport.ErrMissingRequiredHeaders),
		errors.Is(err, leaveimport.ErrUnsupportedFileType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leaveimport.ErrBatchNotFound):
		NotFound(w, "Import batch not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

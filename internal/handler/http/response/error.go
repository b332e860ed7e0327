package response

import (
	"errors"
	"net/http"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/auth"
	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/domain/kiosk"
	"github.com/checadormx/checador-backend-go/internal/domain/report"
	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
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
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already has an open check-in")
	case errors.Is(err, attendance.ErrNothingToClose):
		Conflict(w, "Employee has no open check-in")
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Attendance record not found")

	// Concept domain errors
	case errors.Is(err, concept.ErrConceptNotFound):
		NotFound(w, "Concept not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid period, expected YYYY-Www", nil)

	// Kiosk domain errors
	case errors.Is(err, kiosk.ErrInvalidToken):
		Unauthorized(w, "Kiosk token invalid or expired")
	case errors.Is(err, kiosk.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, kiosk.ErrNoPIN):
		BadRequest(w, "Employee has no PIN configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

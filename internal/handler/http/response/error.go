package response

import (
	"errors"
	"net/http"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/auth"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Decision outcomes
// (duplicate scan, week-off confirmation) never reach here: they are success
// payloads, not errors.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")

	// Gate domain errors
	case errors.Is(err, gate.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Roster import errors
	case errors.Is(err, roster.ErrEmptyWorkbook):
		BadRequest(w, "Workbook has no data rows", nil)
	case errors.Is(err, roster.ErrWorkbookBadShape):
		BadRequest(w, "Workbook is missing required columns", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

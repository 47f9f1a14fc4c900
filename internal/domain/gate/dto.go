package gate

import (
	"fmt"

	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/validator"
)

// ========================================
// GATE DTOs
// ========================================

type ScanRequest struct {
	BadgeCode       string `json:"badge_code"`
	OverrideWeekOff bool   `json:"override_week_off"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BadgeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "badge_code",
			Message: "badge_code is required",
		})
	} else if !validator.IsValidBadgeCode(r.BadgeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "badge_code",
			Message: "badge_code has an invalid format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanResponse struct {
	Outcome      Outcome  `json:"outcome"`
	EmployeeName string   `json:"employee_name,omitempty"`
	ElapsedHours *float64 `json:"elapsed_hours,omitempty"`
	Overtime     *bool    `json:"overtime,omitempty"`
	Message      string   `json:"message,omitempty"`
}

type OpenSessionResponse struct {
	SessionID         string  `json:"session_id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	BadgeCode         string  `json:"badge_code"`
	Shift             string  `json:"shift"`
	Department        string  `json:"department,omitempty"`
	GateInTime        string  `json:"gate_in_time"`
	ElapsedHoursSoFar float64 `json:"elapsed_hours_so_far"`
}

type BulkCloseRequest struct {
	SessionIDs []string `json:"session_ids"`
}

func (r *BulkCloseRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.SessionIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "session_ids",
			Message: "session_ids must not be empty",
		})
	}
	for i, id := range r.SessionIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("session_ids[%d]", i),
				Message: "must be a valid UUID",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCloseResponse struct {
	ClosedCount int `json:"closed_count"`
}

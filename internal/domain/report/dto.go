package report

import (
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

// Status codes for one (employee, date) cell.
const (
	StatusPresent = "P"
	StatusAbsent  = "A"
	StatusWeekOff = "WO"
)

type BuildRequest struct {
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	Department *string `json:"department,omitempty"`
	OnlyAbsent bool    `json:"only_absent"`

	// Parsed by Validate.
	From time.Time `json:"-"`
	To   time.Time `json:"-"`
}

func (r *BuildRequest) Validate() error {
	var errs validator.ValidationErrors

	from, ok := validator.IsValidDate(r.FromDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	to, ok := validator.IsValidDate(r.ToDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must not be after to_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.From = from
	r.To = to
	return nil
}

// Row is one employee-date cell of the attendance matrix. Hours and
// OvertimeHours are set only for present days with at least one closed
// session; same-day cycles are summed.
type Row struct {
	EmployeeID    string   `json:"employee_id"`
	BadgeCode     string   `json:"badge_code"`
	EmployeeName  string   `json:"employee_name"`
	Department    string   `json:"department,omitempty"`
	Date          string   `json:"date"`
	Status        string   `json:"status"`
	Hours         *float64 `json:"hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
}

type BuildResponse struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Rows     []Row  `json:"rows"`
}

package roster

import (
	"fmt"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/validator"
)

// RowRequest is one parsed roster row, from the JSON batch endpoint or the
// xlsx import. Upserts an Employee plus their Assignment, keyed by badge code.
type RowRequest struct {
	BadgeCode     string `json:"badge_code"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Department    string `json:"department"`
	Shift         string `json:"shift"`
	WeekOff       string `json:"week_off"`
	DateOfJoining string `json:"date_of_joining"`
}

type BatchRequest struct {
	Rows []RowRequest `json:"rows"`
}

func (r *BatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "at least one roster row is required",
		})
		return errs
	}

	for i, row := range r.Rows {
		field := func(name string) string { return fmt.Sprintf("rows[%d].%s", i, name) }

		if validator.IsEmpty(row.BadgeCode) {
			errs = append(errs, validator.ValidationError{
				Field:   field("badge_code"),
				Message: "badge_code is required",
			})
		} else if !validator.IsValidBadgeCode(row.BadgeCode) {
			errs = append(errs, validator.ValidationError{
				Field:   field("badge_code"),
				Message: "badge_code has an invalid format",
			})
		}
		if _, ok := employee.ParseGender(row.Gender); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field("gender"),
				Message: "gender must be Male or Female",
			})
		}
		if validator.IsEmpty(row.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   field("name"),
				Message: "name is required",
			})
		}
		if !validator.IsEmpty(row.Shift) {
			if _, ok := ParseShift(row.Shift); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field("shift"),
					Message: "shift must be one of Morning, Evening, Night, General",
				})
			}
		}
		if validator.IsEmpty(row.WeekOff) {
			errs = append(errs, validator.ValidationError{
				Field:   field("week_off"),
				Message: "week_off is required",
			})
		} else if _, ok := ParseWeekday(row.WeekOff); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field("week_off"),
				Message: "week_off must be a weekday name",
			})
		}
		if !validator.IsEmpty(row.DateOfJoining) {
			if _, ok := validator.IsValidDate(row.DateOfJoining); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field("date_of_joining"),
					Message: "date_of_joining must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	CreatedCount int `json:"created_count"`
	UpdatedCount int `json:"updated_count"`
}

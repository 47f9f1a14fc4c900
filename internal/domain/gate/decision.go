package gate

import (
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
)

// Outcome is the decision the engine reaches for a badge scan. Duplicate and
// week-off-confirmation are normal results, not failures.
type Outcome string

const (
	OutcomeGateIn                      Outcome = "GATE_IN"
	OutcomeGateOut                     Outcome = "GATE_OUT"
	OutcomeDuplicateScan               Outcome = "DUPLICATE_SCAN"
	OutcomeWeekOffConfirmationRequired Outcome = "WEEK_OFF_CONFIRMATION_REQUIRED"
)

// Decide runs the gate state machine for a single scan. open is the
// employee's current open session, or nil for a fresh scan; weekOff reports
// whether the scan day is the employee's roster rest day.
func Decide(open *Session, now time.Time, weekOff, override bool) Outcome {
	if open != nil {
		if ElapsedHours(open.GateIn, now) < DuplicateWindowHours {
			return OutcomeDuplicateScan
		}
		return OutcomeGateOut
	}
	if weekOff && !override {
		return OutcomeWeekOffConfirmationRequired
	}
	return OutcomeGateIn
}

// ShiftFor is the single place the missing-roster default is applied: an
// employee without an assignment works the General shift.
func ShiftFor(assignment *roster.Assignment) roster.Shift {
	if assignment == nil {
		return roster.DefaultShift
	}
	return assignment.Shift
}

// IsWeekOff reports whether day is the employee's rest day. An employee
// without an assignment has no rest day.
func IsWeekOff(assignment *roster.Assignment, day time.Time) bool {
	if assignment == nil {
		return false
	}
	return assignment.WeekOff.Matches(day)
}

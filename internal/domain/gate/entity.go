package gate

import "time"

// Session is one gate-in -> gate-out cycle. GateOut == nil means the employee
// is still inside; at most one open session may exist per employee at any
// time, enforced by a partial unique index and the per-employee scan lock.
type Session struct {
	ID              string
	EmployeeID      string
	BadgeCode       string
	Shift           string
	Department      string
	Date            time.Time
	GateIn          time.Time
	GateOut         *time.Time
	WeekOffOverride bool
	Overtime        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for list/report views
	EmployeeName *string
}

// Open reports whether the session has no gate-out yet.
func (s Session) Open() bool {
	return s.GateOut == nil
}

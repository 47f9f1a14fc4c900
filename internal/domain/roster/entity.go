package roster

import (
	"strings"
	"time"
)

// Weekday is the closed set of rest-day names used by roster assignments.
// Matching against a calendar day goes through time.Weekday indices so the
// runtime locale never affects the comparison.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

var weekdayIndex = map[Weekday]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// ParseWeekday resolves a weekday name case-insensitively.
func ParseWeekday(s string) (Weekday, bool) {
	for day := range weekdayIndex {
		if strings.EqualFold(string(day), strings.TrimSpace(s)) {
			return day, true
		}
	}
	return "", false
}

// Matches reports whether t falls on this weekday.
func (w Weekday) Matches(t time.Time) bool {
	idx, ok := weekdayIndex[w]
	return ok && t.Weekday() == idx
}

// Shift is the closed set of shift labels an assignment may carry.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
	ShiftNight   Shift = "Night"
	ShiftGeneral Shift = "General"
)

// DefaultShift applies when an employee has no roster assignment.
const DefaultShift = ShiftGeneral

// ParseShift resolves a shift label case-insensitively.
func ParseShift(s string) (Shift, bool) {
	for _, shift := range []Shift{ShiftMorning, ShiftEvening, ShiftNight, ShiftGeneral} {
		if strings.EqualFold(string(shift), strings.TrimSpace(s)) {
			return shift, true
		}
	}
	return "", false
}

// Assignment is the single current roster record for an employee. There is no
// history: updates overwrite the row in place.
type Assignment struct {
	ID         string
	EmployeeID string
	Shift      Shift
	WeekOff    Weekday
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package employee

import (
	"strings"
	"time"
)

// Employee is an identity eligible to pass the gate. Deactivation clears the
// Active flag but keeps the row and its attendance history.
type Employee struct {
	ID            string
	BadgeCode     string
	FullName      string
	Gender        Gender
	Department    string
	DateOfJoining *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// ParseGender resolves a gender label case-insensitively. Empty input is
// allowed and resolves to the zero value.
func ParseGender(s string) (Gender, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, g := range []Gender{Male, Female} {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	return "", false
}

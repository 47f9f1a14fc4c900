package roster

import "context"

// AssignmentRepository defines data access for roster assignments.
type AssignmentRepository interface {
	// GetByEmployeeID returns the employee's current assignment, or nil when
	// the employee has none. Absence is not an error: callers apply the
	// default-shift policy themselves.
	GetByEmployeeID(ctx context.Context, employeeID string) (*Assignment, error)

	// ListAll returns every current assignment.
	ListAll(ctx context.Context) ([]Assignment, error)

	// Upsert writes the assignment for assignment.EmployeeID, overwriting any
	// existing row for that employee.
	Upsert(ctx context.Context, assignment Assignment) (Assignment, error)

	// DeleteAll removes every assignment. Administrative wipe only.
	DeleteAll(ctx context.Context) error
}

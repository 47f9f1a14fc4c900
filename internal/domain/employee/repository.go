package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// GetByBadgeCode retrieves an employee by the badge code presented at the
	// gate. Returns ErrEmployeeNotFound when no row matches.
	GetByBadgeCode(ctx context.Context, badgeCode string) (Employee, error)

	// ListActive returns active employees, optionally filtered by department.
	ListActive(ctx context.Context, department *string) ([]Employee, error)

	// Create inserts a new employee.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// Update overwrites the mutable profile fields of an employee.
	Update(ctx context.Context, emp Employee) error

	// Deactivate clears the active flag. The row is never deleted outside of
	// DeleteAll so historical sessions keep their reference.
	Deactivate(ctx context.Context, id string) error

	// DeleteAll removes every employee. Administrative wipe only.
	DeleteAll(ctx context.Context) error
}

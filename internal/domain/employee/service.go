package employee

import "context"

// EmployeeService covers the administrative views over the directory.
type EmployeeService interface {
	// List returns active employees, optionally filtered by department.
	List(ctx context.Context, department *string) ([]EmployeeResponse, error)

	// Deactivate removes an employee from gate-entry eligibility while
	// preserving attendance history.
	Deactivate(ctx context.Context, id string) error

	// PurgeAllData wipes sessions, roster assignments and employees in one
	// transaction. Administrative reset only.
	PurgeAllData(ctx context.Context) error
}

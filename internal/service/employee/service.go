package employee

import (
	"context"
	"fmt"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	roster.AssignmentRepository
	gate.SessionRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo roster.AssignmentRepository,
	sessionRepo gate.SessionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		AssignmentRepository: assignmentRepo,
		SessionRepository:    sessionRepo,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, department *string) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Deactivate(ctx, id); err != nil {
		return err
	}
	return nil
}

// PurgeAllData implements employee.EmployeeService. Sessions go first so the
// foreign keys never dangle; all three wipes commit together or not at all.
func (s *EmployeeServiceImpl) PurgeAllData(ctx context.Context) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.SessionRepository.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.AssignmentRepository.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.EmployeeRepository.DeleteAll(txCtx); err != nil {
			return err
		}
		return nil
	})
}

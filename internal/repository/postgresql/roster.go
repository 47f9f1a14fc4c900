package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.AssignmentRepository {
	return &rosterRepositoryImpl{db: db}
}

// GetByEmployeeID implements roster.AssignmentRepository. A missing
// assignment returns (nil, nil): absence is a valid state, not an error.
func (r *rosterRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift, week_off, created_at, updated_at
		FROM roster_assignments
		WHERE employee_id = $1
	`

	var a roster.Assignment
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.Shift, &a.WeekOff, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roster assignment: %w", err)
	}

	return &a, nil
}

// ListAll implements roster.AssignmentRepository.
func (r *rosterRepositoryImpl) ListAll(ctx context.Context) ([]roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift, week_off, created_at, updated_at
		FROM roster_assignments
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster assignments: %w", err)
	}
	defer rows.Close()

	var assignments []roster.Assignment
	for rows.Next() {
		var a roster.Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Shift, &a.WeekOff, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Upsert implements roster.AssignmentRepository. One row per employee,
// overwritten on update: no shift history is retained.
func (r *rosterRepositoryImpl) Upsert(ctx context.Context, a roster.Assignment) (roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_assignments (id, employee_id, shift, week_off)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE
		SET shift = EXCLUDED.shift, week_off = EXCLUDED.week_off, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.Shift, a.WeekOff).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return roster.Assignment{}, fmt.Errorf("failed to upsert roster assignment: %w", err)
	}

	return a, nil
}

// DeleteAll implements roster.AssignmentRepository.
func (r *rosterRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM roster_assignments`); err != nil {
		return fmt.Errorf("failed to delete roster assignments: %w", err)
	}
	return nil
}

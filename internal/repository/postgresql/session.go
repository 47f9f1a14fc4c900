package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) gate.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

const sessionColumns = `s.id, s.employee_id, s.badge_code, s.shift, s.department, s.date,
	s.gate_in, s.gate_out, s.week_off_override, s.overtime, s.created_at, s.updated_at,
	e.full_name`

func scanSession(row pgx.Row) (gate.Session, error) {
	var s gate.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BadgeCode, &s.Shift, &s.Department, &s.Date,
		&s.GateIn, &s.GateOut, &s.WeekOffOverride, &s.Overtime, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName,
	)
	return s, err
}

// GetOpenByEmployee implements gate.SessionRepository. The partial unique
// index guarantees at most one matching row.
func (r *sessionRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (*gate.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND s.gate_out IS NULL
	`, sessionColumns)

	s, err := scanSession(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &s, nil
}

// ListOpen implements gate.SessionRepository.
func (r *sessionRepositoryImpl) ListOpen(ctx context.Context) ([]gate.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.gate_out IS NULL
		ORDER BY s.gate_in
	`, sessionColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// ListByDateRange implements gate.SessionRepository.
func (r *sessionRepositoryImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]gate.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.employee_id, s.date, s.gate_in
	`, sessionColumns)

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by date range: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func collectSessions(rows pgx.Rows) ([]gate.Session, error) {
	var sessions []gate.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListStaleOpenIDs implements gate.SessionRepository.
func (r *sessionRepositoryImpl) ListStaleOpenIDs(ctx context.Context, cutoff time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM attendance_sessions
		WHERE gate_out IS NULL
		  AND gate_in < $1
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Create implements gate.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s gate.Session) (gate.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, badge_code, shift, department, date,
			gate_in, week_off_override, overtime
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.BadgeCode, s.Shift, s.Department, s.Date,
		s.GateIn, s.WeekOffOverride, s.Overtime,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return gate.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return s, nil
}

// Close implements gate.SessionRepository.
func (r *sessionRepositoryImpl) Close(ctx context.Context, id string, gateOut time.Time, overtime bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET gate_out = $2, overtime = $3, updated_at = NOW()
		WHERE id = $1
		  AND gate_out IS NULL
		RETURNING id
	`

	var closedID string
	err := q.QueryRow(ctx, query, id, gateOut, overtime).Scan(&closedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gate.ErrSessionNotFound
		}
		return fmt.Errorf("failed to close session: %w", err)
	}

	return nil
}

// CloseIfOpen implements gate.SessionRepository. Openness is re-checked in
// the UPDATE itself and the overtime flag is derived from the stored gate-in,
// so a session closed by a concurrent call is skipped, never double-closed.
func (r *sessionRepositoryImpl) CloseIfOpen(ctx context.Context, id string, gateOut time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET gate_out = $2,
		    overtime = (EXTRACT(EPOCH FROM ($2 - gate_in)) / 3600.0) >= $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND gate_out IS NULL
		RETURNING id
	`

	var closedID string
	err := q.QueryRow(ctx, query, id, gateOut, gate.OvertimeThresholdHours).Scan(&closedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to close session %s: %w", id, err)
	}

	return true, nil
}

// DeleteAll implements gate.SessionRepository.
func (r *sessionRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_sessions`); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GateServiceImpl struct {
	db *database.DB
	gate.SessionRepository
	employee.EmployeeRepository
	roster.AssignmentRepository
}

func NewGateService(
	db *database.DB,
	sessionRepo gate.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo roster.AssignmentRepository,
) gate.GateService {
	return &GateServiceImpl{
		db:                   db,
		SessionRepository:    sessionRepo,
		EmployeeRepository:   employeeRepo,
		AssignmentRepository: assignmentRepo,
	}
}

// Scan implements gate.GateService. The open-session lookup and the
// create-or-close that follows run inside one transaction holding a
// per-employee advisory lock, so two near-simultaneous scans of the same
// badge cannot both open a session. Scans for different badges do not
// contend.
func (g *GateServiceImpl) Scan(ctx context.Context, req gate.ScanRequest) (gate.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return gate.ScanResponse{}, err
	}

	emp, err := g.EmployeeRepository.GetByBadgeCode(ctx, req.BadgeCode)
	if err != nil {
		return gate.ScanResponse{}, err
	}
	if !emp.Active {
		return gate.ScanResponse{}, employee.ErrEmployeeInactive
	}

	var resp gate.ScanResponse
	err = postgresql.WithTransaction(ctx, g.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := postgresql.LockEmployee(txCtx, tx, emp.ID); err != nil {
			return err
		}

		now := time.Now()

		open, err := g.SessionRepository.GetOpenByEmployee(txCtx, emp.ID)
		if err != nil {
			return err
		}

		assignment, err := g.AssignmentRepository.GetByEmployeeID(txCtx, emp.ID)
		if err != nil {
			return err
		}
		weekOff := gate.IsWeekOff(assignment, now)

		switch gate.Decide(open, now, weekOff, req.OverrideWeekOff) {
		case gate.OutcomeDuplicateScan:
			resp = gate.ScanResponse{
				Outcome:      gate.OutcomeDuplicateScan,
				EmployeeName: emp.FullName,
				Message:      "Already scanned within the last hour",
			}

		case gate.OutcomeGateOut:
			elapsed := gate.ElapsedHours(open.GateIn, now)
			overtime := gate.IsOvertime(elapsed)

			if err := g.SessionRepository.Close(txCtx, open.ID, now, overtime); err != nil {
				return fmt.Errorf("failed to close session: %w", err)
			}

			rounded := gate.RoundHours(elapsed, 1)
			resp = gate.ScanResponse{
				Outcome:      gate.OutcomeGateOut,
				EmployeeName: emp.FullName,
				ElapsedHours: &rounded,
				Overtime:     &overtime,
				Message:      fmt.Sprintf("Gate out recorded, %.1f hours worked", rounded),
			}

		case gate.OutcomeWeekOffConfirmationRequired:
			resp = gate.ScanResponse{
				Outcome:      gate.OutcomeWeekOffConfirmationRequired,
				EmployeeName: emp.FullName,
				Message:      "Today is the week-off day; resubmit with override to gate in",
			}

		case gate.OutcomeGateIn:
			session := gate.Session{
				ID:              uuid.NewString(),
				EmployeeID:      emp.ID,
				BadgeCode:       emp.BadgeCode,
				Shift:           string(gate.ShiftFor(assignment)),
				Department:      emp.Department,
				Date:            time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
				GateIn:          now,
				WeekOffOverride: weekOff && req.OverrideWeekOff,
			}

			if _, err := g.SessionRepository.Create(txCtx, session); err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}

			resp = gate.ScanResponse{
				Outcome:      gate.OutcomeGateIn,
				EmployeeName: emp.FullName,
				Message:      "Gate in recorded",
			}
		}

		return nil
	})
	if err != nil {
		return gate.ScanResponse{}, err
	}

	return resp, nil
}

// ListOpenSessions implements gate.GateService.
func (g *GateServiceImpl) ListOpenSessions(ctx context.Context) ([]gate.OpenSessionResponse, error) {
	sessions, err := g.SessionRepository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}

	now := time.Now()
	responses := make([]gate.OpenSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		var name string
		if s.EmployeeName != nil {
			name = *s.EmployeeName
		}
		responses = append(responses, gate.OpenSessionResponse{
			SessionID:         s.ID,
			EmployeeID:        s.EmployeeID,
			EmployeeName:      name,
			BadgeCode:         s.BadgeCode,
			Shift:             s.Shift,
			Department:        s.Department,
			GateInTime:        s.GateIn.Format("2006-01-02 15:04:05"),
			ElapsedHoursSoFar: gate.RoundHours(gate.ElapsedHours(s.GateIn, now), 1),
		})
	}

	return responses, nil
}

// BulkCloseSessions implements gate.GateService. Each ID is re-checked for
// openness at update time; unknown, duplicate and already-closed IDs are
// skipped and the count reflects actual closures only.
func (g *GateServiceImpl) BulkCloseSessions(ctx context.Context, req gate.BulkCloseRequest) (gate.BulkCloseResponse, error) {
	if err := req.Validate(); err != nil {
		return gate.BulkCloseResponse{}, err
	}

	now := time.Now()
	seen := make(map[string]bool, len(req.SessionIDs))
	closed := 0
	for _, id := range req.SessionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		ok, err := g.SessionRepository.CloseIfOpen(ctx, id, now)
		if err != nil {
			return gate.BulkCloseResponse{}, err
		}
		if ok {
			closed++
		}
	}

	return gate.BulkCloseResponse{ClosedCount: closed}, nil
}

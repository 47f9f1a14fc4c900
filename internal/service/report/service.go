package report

import (
	"context"
	"fmt"
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/report"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	roster.AssignmentRepository
	gate.SessionRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	assignmentRepo roster.AssignmentRepository,
	sessionRepo gate.SessionRepository,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepo,
		AssignmentRepository: assignmentRepo,
		SessionRepository:    sessionRepo,
	}
}

// Build implements report.ReportService. Pure function of the employee,
// roster and ledger snapshot: rerunning over a closed range with no
// intervening writes yields identical rows.
func (s *ReportServiceImpl) Build(ctx context.Context, req report.BuildRequest) (report.BuildResponse, error) {
	if err := req.Validate(); err != nil {
		return report.BuildResponse{}, err
	}

	employees, err := s.EmployeeRepository.ListActive(ctx, req.Department)
	if err != nil {
		return report.BuildResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	assignments, err := s.AssignmentRepository.ListAll(ctx)
	if err != nil {
		return report.BuildResponse{}, fmt.Errorf("failed to load roster assignments: %w", err)
	}

	// The department filter applies to the employee directory only. Session
	// rows keep the department snapshotted at gate-in, so filtering them
	// would drop history for anyone moved by a later roster upsert.
	sessions, err := s.SessionRepository.ListByDateRange(ctx, req.From, req.To)
	if err != nil {
		return report.BuildResponse{}, fmt.Errorf("failed to load sessions: %w", err)
	}

	rows := aggregate(employees, assignments, sessions, req.From, req.To, req.OnlyAbsent)

	return report.BuildResponse{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Rows:     rows,
	}, nil
}

// aggregate builds the per-employee-per-date status rows. Employees keep the
// directory order; dates are enumerated ascending within each employee.
// Multiple same-day sessions are summed into one presence row.
func aggregate(
	employees []employee.Employee,
	assignments []roster.Assignment,
	sessions []gate.Session,
	from, to time.Time,
	onlyAbsent bool,
) []report.Row {
	assignmentByEmployee := make(map[string]*roster.Assignment, len(assignments))
	for i := range assignments {
		assignmentByEmployee[assignments[i].EmployeeID] = &assignments[i]
	}

	sessionsByEmployeeDate := make(map[string]map[string][]gate.Session)
	for _, s := range sessions {
		dateKey := s.Date.Format("2006-01-02")
		byDate, ok := sessionsByEmployeeDate[s.EmployeeID]
		if !ok {
			byDate = make(map[string][]gate.Session)
			sessionsByEmployeeDate[s.EmployeeID] = byDate
		}
		byDate[dateKey] = append(byDate[dateKey], s)
	}

	rows := make([]report.Row, 0, len(employees))
	for _, emp := range employees {
		assignment := assignmentByEmployee[emp.ID]

		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			dateKey := day.Format("2006-01-02")
			daySessions := sessionsByEmployeeDate[emp.ID][dateKey]

			row := report.Row{
				EmployeeID:   emp.ID,
				BadgeCode:    emp.BadgeCode,
				EmployeeName: emp.FullName,
				Department:   emp.Department,
				Date:         dateKey,
			}

			switch {
			case len(daySessions) > 0:
				row.Status = report.StatusPresent
				total := 0.0
				closed := false
				for _, s := range daySessions {
					if !s.Open() {
						total += gate.ElapsedHours(s.GateIn, *s.GateOut)
						closed = true
					}
				}
				if closed {
					excess := gate.OvertimeExcess(total)
					row.Hours = &total
					row.OvertimeHours = &excess
				}
			case gate.IsWeekOff(assignment, day):
				row.Status = report.StatusWeekOff
			default:
				row.Status = report.StatusAbsent
			}

			if onlyAbsent && row.Status != report.StatusAbsent {
				continue
			}
			rows = append(rows, row)
		}
	}

	return rows
}

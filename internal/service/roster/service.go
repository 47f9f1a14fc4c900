package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xuri/excelize/v2"
)

type RosterServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	roster.AssignmentRepository
}

func NewRosterService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo roster.AssignmentRepository,
) roster.RosterService {
	return &RosterServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		AssignmentRepository: assignmentRepo,
	}
}

// UpsertBatch implements roster.RosterService. Rows are validated up front;
// a batch with any malformed row is rejected before touching storage. The
// whole batch commits or rolls back as one transaction.
func (s *RosterServiceImpl) UpsertBatch(ctx context.Context, req roster.BatchRequest) (roster.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.BatchResponse{}, err
	}

	var resp roster.BatchResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, row := range req.Rows {
			created, err := s.upsertRow(txCtx, row)
			if err != nil {
				return err
			}
			if created {
				resp.CreatedCount++
			} else {
				resp.UpdatedCount++
			}
		}
		return nil
	})
	if err != nil {
		return roster.BatchResponse{}, err
	}

	return resp, nil
}

func (s *RosterServiceImpl) upsertRow(ctx context.Context, row roster.RowRequest) (created bool, err error) {
	shift := roster.DefaultShift
	if parsed, ok := roster.ParseShift(row.Shift); ok {
		shift = parsed
	}
	weekOff, _ := roster.ParseWeekday(row.WeekOff)
	gender, _ := employee.ParseGender(row.Gender)

	var dateOfJoining *time.Time
	if row.DateOfJoining != "" {
		if d, err := time.Parse("2006-01-02", row.DateOfJoining); err == nil {
			dateOfJoining = &d
		}
	}

	emp, err := s.EmployeeRepository.GetByBadgeCode(ctx, row.BadgeCode)
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		emp, err = s.EmployeeRepository.Create(ctx, employee.Employee{
			ID:            uuid.NewString(),
			BadgeCode:     row.BadgeCode,
			FullName:      row.Name,
			Gender:        gender,
			Department:    row.Department,
			DateOfJoining: dateOfJoining,
			Active:        true,
		})
		if err != nil {
			return false, err
		}
		created = true
	case err != nil:
		return false, err
	default:
		emp.FullName = row.Name
		emp.Gender = gender
		emp.Department = row.Department
		if dateOfJoining != nil {
			emp.DateOfJoining = dateOfJoining
		}
		if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
			return false, err
		}
	}

	_, err = s.AssignmentRepository.Upsert(ctx, roster.Assignment{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Shift:      shift,
		WeekOff:    weekOff,
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// Expected header row of an import workbook, matched case-insensitively.
var workbookHeader = []string{"badge_code", "name", "gender", "department", "shift", "week_off", "date_of_joining"}

// ImportWorkbook implements roster.RosterService. The first sheet's first
// row must carry the expected headers; remaining rows become batch rows.
func (s *RosterServiceImpl) ImportWorkbook(ctx context.Context, r io.Reader) (roster.BatchResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return roster.BatchResponse{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return roster.BatchResponse{}, roster.ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return roster.BatchResponse{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return roster.BatchResponse{}, roster.ErrEmptyWorkbook
	}

	colIndex := make(map[string]int)
	for i, cell := range rows[0] {
		colIndex[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, col := range workbookHeader[:2] { // badge_code and name are mandatory columns
		if _, ok := colIndex[col]; !ok {
			return roster.BatchResponse{}, roster.ErrWorkbookBadShape
		}
	}

	cell := func(row []string, col string) string {
		idx, ok := colIndex[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	req := roster.BatchRequest{}
	for _, row := range rows[1:] {
		if len(row) == 0 || cell(row, "badge_code") == "" {
			continue // skip blank rows
		}
		req.Rows = append(req.Rows, roster.RowRequest{
			BadgeCode:     cell(row, "badge_code"),
			Name:          cell(row, "name"),
			Gender:        cell(row, "gender"),
			Department:    cell(row, "department"),
			Shift:         cell(row, "shift"),
			WeekOff:       cell(row, "week_off"),
			DateOfJoining: cell(row, "date_of_joining"),
		})
	}
	if len(req.Rows) == 0 {
		return roster.BatchResponse{}, roster.ErrEmptyWorkbook
	}

	return s.UpsertBatch(ctx, req)
}

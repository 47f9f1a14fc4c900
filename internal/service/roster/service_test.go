package roster

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
)

var testRosterDB *database.DB

func rosterTestInit(t *testing.T) {
	t.Helper()
	if testRosterDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, 4, 1)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "0001_init.up.sql"))
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), string(schema))
	require.NoError(t, err)

	testRosterDB = db
}

func newRosterTestService() roster.RosterService {
	return NewRosterService(
		testRosterDB,
		postgresql.NewEmployeeRepository(testRosterDB),
		postgresql.NewRosterRepository(testRosterDB),
	)
}

func uniqueRosterBadge(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano()%1_000_000_000)
}

func TestRosterService_UpsertBatch_CreateThenUpdate(t *testing.T) {
	ctx := context.Background()
	rosterTestInit(t)
	svc := newRosterTestService()

	badge := uniqueRosterBadge("RB")
	row := roster.RowRequest{
		BadgeCode:     badge,
		Name:          "Asha Verma",
		Gender:        "female",
		Department:    "Packaging",
		Shift:         "Morning",
		WeekOff:       "Sunday",
		DateOfJoining: "2023-11-01",
	}

	resp, err := svc.UpsertBatch(ctx, roster.BatchRequest{Rows: []roster.RowRequest{row}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 0, resp.UpdatedCount)

	row.Shift = "Night"
	row.WeekOff = "Monday"
	resp, err = svc.UpsertBatch(ctx, roster.BatchRequest{Rows: []roster.RowRequest{row}})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CreatedCount)
	assert.Equal(t, 1, resp.UpdatedCount)

	var shift, weekOff, gender string
	err = testRosterDB.QueryRow(ctx, `
		SELECT a.shift, a.week_off, e.gender
		FROM roster_assignments a
		JOIN employees e ON e.id = a.employee_id
		WHERE e.badge_code = $1
	`, badge).Scan(&shift, &weekOff, &gender)
	require.NoError(t, err)
	assert.Equal(t, "Night", shift)
	assert.Equal(t, "Monday", weekOff)
	assert.Equal(t, "Female", gender)
}

func TestRosterService_UpsertBatch_RejectsMalformedRow(t *testing.T) {
	ctx := context.Background()
	rosterTestInit(t)
	svc := newRosterTestService()

	req := roster.BatchRequest{Rows: []roster.RowRequest{
		{BadgeCode: uniqueRosterBadge("RV"), Name: "Ravi Nair", WeekOff: "Someday"},
	}}

	_, err := svc.UpsertBatch(ctx, req)
	assert.Error(t, err)
}

func buildRosterWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"badge_code", "name", "gender", "department", "shift", "week_off", "date_of_joining"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRosterService_ImportWorkbook(t *testing.T) {
	ctx := context.Background()
	rosterTestInit(t)
	svc := newRosterTestService()

	badgeA := uniqueRosterBadge("XA")
	badgeB := uniqueRosterBadge("XB")
	buf := buildRosterWorkbook(t, [][]interface{}{
		{badgeA, "Asha Verma", "Female", "Packaging", "Morning", "Sunday", "2023-11-01"},
		{badgeB, "Ravi Nair", "Male", "Dispatch", "Night", "Monday", ""},
		{"", "", "", "", "", "", ""}, // trailing blank row is ignored
	})

	resp, err := svc.ImportWorkbook(ctx, buf)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.CreatedCount)
	assert.Equal(t, 0, resp.UpdatedCount)

	var weekOff string
	err = testRosterDB.QueryRow(ctx, `
		SELECT a.week_off
		FROM roster_assignments a
		JOIN employees e ON e.id = a.employee_id
		WHERE e.badge_code = $1
	`, badgeB).Scan(&weekOff)
	require.NoError(t, err)
	assert.Equal(t, "Monday", weekOff)
}

func TestRosterService_ImportWorkbook_HeaderOnly(t *testing.T) {
	t.Parallel()
	svc := NewRosterService(nil, nil, nil)

	buf := buildRosterWorkbook(t, nil)

	_, err := svc.ImportWorkbook(context.Background(), buf)
	assert.ErrorIs(t, err, roster.ErrEmptyWorkbook)
}

func TestRosterService_ImportWorkbook_MissingMandatoryColumns(t *testing.T) {
	t.Parallel()
	svc := NewRosterService(nil, nil, nil)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []interface{}{"code", "employee"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	row := []interface{}{"SLP001", "Asha Verma"}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = svc.ImportWorkbook(context.Background(), buf)
	assert.ErrorIs(t, err, roster.ErrWorkbookBadShape)
}

func TestRosterService_ImportWorkbook_NotAWorkbook(t *testing.T) {
	t.Parallel()
	svc := NewRosterService(nil, nil, nil)

	_, err := svc.ImportWorkbook(context.Background(), bytes.NewBufferString("not an xlsx payload"))
	assert.Error(t, err)
}

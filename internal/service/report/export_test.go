package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/report"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
)

var testReportDB *database.DB

func reportTestInit(t *testing.T) {
	t.Helper()
	if testReportDB != nil {
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

	testReportDB = db
}

func newReportTestService() report.ReportService {
	return NewReportService(
		postgresql.NewEmployeeRepository(testReportDB),
		postgresql.NewRosterRepository(testReportDB),
		postgresql.NewSessionRepository(testReportDB),
	)
}

func seedReportEmployee(t *testing.T, ctx context.Context, department string) (id, badge string) {
	t.Helper()
	badge = fmt.Sprintf("RP%d", time.Now().UnixNano()%1_000_000_000)
	err := testReportDB.QueryRow(ctx, `
		INSERT INTO employees (id, badge_code, full_name, department, active)
		VALUES (gen_random_uuid(), $1, $2, $3, TRUE)
		RETURNING id
	`, badge, "Employee "+badge, department).Scan(&id)
	require.NoError(t, err)
	return id, badge
}

func seedClosedSession(t *testing.T, ctx context.Context, employeeID, badge, date string, worked time.Duration) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	gateIn := day.Add(9 * time.Hour)
	_, err = testReportDB.Exec(ctx, `
		INSERT INTO attendance_sessions (id, employee_id, badge_code, date, gate_in, gate_out)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	`, employeeID, badge, day, gateIn, gateIn.Add(worked))
	require.NoError(t, err)
}

func TestReportService_Build(t *testing.T) {
	ctx := context.Background()
	reportTestInit(t)
	svc := newReportTestService()

	department := fmt.Sprintf("Dept%d", time.Now().UnixNano()%1_000_000_000)
	id, badge := seedReportEmployee(t, ctx, department)
	seedClosedSession(t, ctx, id, badge, "2024-03-04", 8*time.Hour)

	resp, err := svc.Build(ctx, report.BuildRequest{
		FromDate:   "2024-03-04",
		ToDate:     "2024-03-05",
		Department: &department,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	assert.Equal(t, report.StatusPresent, resp.Rows[0].Status)
	require.NotNil(t, resp.Rows[0].Hours)
	assert.InDelta(t, 8.0, *resp.Rows[0].Hours, 1e-9)
	assert.Equal(t, report.StatusAbsent, resp.Rows[1].Status)
	assert.Nil(t, resp.Rows[1].Hours)
}

func TestReportService_Build_DepartmentMoveKeepsHistory(t *testing.T) {
	ctx := context.Background()
	reportTestInit(t)
	svc := newReportTestService()

	// The session carries the department snapshotted at gate-in. After a
	// roster move the employee matches the new department filter and the old
	// session must still count as presence.
	oldDept := fmt.Sprintf("Inbound%d", time.Now().UnixNano()%1_000_000_000)
	newDept := fmt.Sprintf("Outbound%d", time.Now().UnixNano()%1_000_000_000)
	id, badge := seedReportEmployee(t, ctx, newDept)

	day, err := time.Parse("2006-01-02", "2024-03-04")
	require.NoError(t, err)
	gateIn := day.Add(9 * time.Hour)
	gateOut := gateIn.Add(8 * time.Hour)
	_, err = testReportDB.Exec(ctx, `
		INSERT INTO attendance_sessions (id, employee_id, badge_code, department, date, gate_in, gate_out)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
	`, id, badge, oldDept, day, gateIn, gateOut)
	require.NoError(t, err)

	resp, err := svc.Build(ctx, report.BuildRequest{
		FromDate:   "2024-03-04",
		ToDate:     "2024-03-04",
		Department: &newDept,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, report.StatusPresent, resp.Rows[0].Status)
	require.NotNil(t, resp.Rows[0].Hours)
	assert.InDelta(t, 8.0, *resp.Rows[0].Hours, 1e-9)
}

func TestReportService_Build_RejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	reportTestInit(t)
	svc := newReportTestService()

	_, err := svc.Build(ctx, report.BuildRequest{FromDate: "2024-03-05", ToDate: "2024-03-04"})
	assert.Error(t, err)
}

func TestReportService_Export(t *testing.T) {
	ctx := context.Background()
	reportTestInit(t)
	svc := newReportTestService()

	department := fmt.Sprintf("Dept%d", time.Now().UnixNano()%1_000_000_000)
	id, badge := seedReportEmployee(t, ctx, department)
	seedClosedSession(t, ctx, id, badge, "2024-03-04", 9*time.Hour+30*time.Minute)

	buf, filename, err := svc.Export(ctx, report.BuildRequest{
		FromDate:   "2024-03-04",
		ToDate:     "2024-03-05",
		Department: &department,
	})

	require.NoError(t, err)
	assert.Equal(t, "attendance_2024-03-04_2024-03-05.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Badge Code", "Name", "Department", "2024-03-04", "2024-03-05"}, rows[0])
	assert.Equal(t, badge, rows[1][0])
	assert.Equal(t, "P (9.50)", rows[1][3])
	assert.Equal(t, "A", rows[1][4])
}

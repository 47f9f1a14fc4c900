package employee

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/employee"
	"github.com/gatetrack/gatetrack-backend-go/internal/pkg/database"
	"github.com/gatetrack/gatetrack-backend-go/internal/repository/postgresql"
)

var testEmployeeDB *database.DB

func employeeTestInit(t *testing.T) {
	t.Helper()
	if testEmployeeDB != nil {
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

	testEmployeeDB = db
}

func newEmployeeTestService() employee.EmployeeService {
	return NewEmployeeService(
		testEmployeeDB,
		postgresql.NewEmployeeRepository(testEmployeeDB),
		postgresql.NewRosterRepository(testEmployeeDB),
		postgresql.NewSessionRepository(testEmployeeDB),
	)
}

func createTestEmployee(t *testing.T, ctx context.Context, department string) (id, badge string) {
	t.Helper()
	badge = fmt.Sprintf("EM%d", time.Now().UnixNano()%1_000_000_000)
	err := testEmployeeDB.QueryRow(ctx, `
		INSERT INTO employees (id, badge_code, full_name, department, active)
		VALUES (gen_random_uuid(), $1, $2, $3, TRUE)
		RETURNING id
	`, badge, "Employee "+badge, department).Scan(&id)
	require.NoError(t, err)
	return id, badge
}

func TestEmployeeService_List_FiltersByDepartment(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	svc := newEmployeeTestService()

	department := fmt.Sprintf("Dept%d", time.Now().UnixNano()%1_000_000_000)
	_, badge := createTestEmployee(t, ctx, department)
	createTestEmployee(t, ctx, department+"-other")

	employees, err := svc.List(ctx, &department)

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, badge, employees[0].BadgeCode)
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	svc := newEmployeeTestService()

	department := fmt.Sprintf("Dept%d", time.Now().UnixNano()%1_000_000_000)
	id, _ := createTestEmployee(t, ctx, department)

	require.NoError(t, svc.Deactivate(ctx, id))

	// Deactivated employees drop out of the directory but keep their row.
	employees, err := svc.List(ctx, &department)
	require.NoError(t, err)
	assert.Empty(t, employees)

	var active bool
	err = testEmployeeDB.QueryRow(ctx, `SELECT active FROM employees WHERE id = $1`, id).Scan(&active)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestEmployeeService_Deactivate_NotFound(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	svc := newEmployeeTestService()

	err := svc.Deactivate(ctx, "4e3f0b62-9a61-4a94-a1a0-52cf7b0f7f75")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_PurgeAllData(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	svc := newEmployeeTestService()

	id, badge := createTestEmployee(t, ctx, "Packaging")
	_, err := testEmployeeDB.Exec(ctx, `
		INSERT INTO roster_assignments (id, employee_id, shift, week_off)
		VALUES (gen_random_uuid(), $1, 'Morning', 'Sunday')
	`, id)
	require.NoError(t, err)
	_, err = testEmployeeDB.Exec(ctx, `
		INSERT INTO attendance_sessions (id, employee_id, badge_code, date, gate_in)
		VALUES (gen_random_uuid(), $1, $2, CURRENT_DATE, NOW())
	`, id, badge)
	require.NoError(t, err)

	require.NoError(t, svc.PurgeAllData(ctx))

	for _, table := range []string{"attendance_sessions", "roster_assignments", "employees"} {
		var count int
		err := testEmployeeDB.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, table)
	}
}

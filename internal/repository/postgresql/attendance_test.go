package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	first := timeutil.FromClock(9, 10, 0)
	last := timeutil.FromClock(17, 5, 0)
	total := last.Sub(first)
	rec := attendance.Record{
		EmployeeID: "EMP001",
		Date:       testDay,
		FirstPunch: &first,
		LastPunch:  &last,
		Status:     attendance.StatusPresent,
		TotalTime:  &total,
	}

	mock.ExpectExec(`INSERT INTO attendances`).
		WithArgs(
			pgxmock.AnyArg(), // generated id
			"EMP001",
			testDay,
			pgTime(first),
			pgTime(last),
			rec.Direction,
			rec.Terminal,
			rec.MatchedShift,
			"P",
			pgInterval(total),
			pgIntervalPtr(nil), // late entry null, never zero
			pgIntervalPtr(nil),
			pgIntervalPtr(nil),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmployeeAndDateMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectQuery(`FROM attendances`).
		WithArgs("EMP001", testDay).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "employee_id", "log_date", "first_punch", "last_punch", "direction", "terminal",
			"shift_name", "status", "total_time", "late_entry", "early_exit", "overtime",
			"created_at", "updated_at",
		}))

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "EMP001", testDay)

	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceListFiltersNullDurations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	now := time.Now()
	columns := []string{
		"id", "employee_id", "log_date", "first_punch", "last_punch", "direction", "terminal",
		"shift_name", "status", "total_time", "late_entry", "early_exit", "overtime",
		"created_at", "updated_at", "employee_name",
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\)(?s).*late_entry IS NOT NULL`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`late_entry IS NOT NULL(?s).*ORDER BY a\.log_date DESC`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			"rec-1", "EMP001", testDay, "09:20:00", "17:00:00", strp("out"), strp("GATE1"),
			strp("GENERAL"), "P", "07:40:00", "00:05:00", nil, nil,
			now, now, strp("Jane Roe"),
		))

	records, total, err := repo.List(context.Background(), attendance.Filter{LateEntryNotNull: true})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "EMP001", rec.EmployeeID)
	require.NotNil(t, rec.LateEntry)
	assert.Equal(t, 5*time.Minute, *rec.LateEntry)
	assert.Nil(t, rec.EarlyExit)
	assert.Nil(t, rec.Overtime)
	require.NotNil(t, rec.EmployeeName)
	assert.Equal(t, "Jane Roe", *rec.EmployeeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestDateEmptyTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectQuery(`SELECT MAX\(log_date\) FROM attendances`).
		WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(nil))

	_, err = repo.LatestDate(context.Background())

	assert.ErrorIs(t, err, attendance.ErrNoLatestDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAutoKeepsCatalogOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShiftRepository(mock)

	now := time.Now()
	columns := []string{
		"id", "name", "start_time", "end_time",
		"grace_before_start_time", "grace_after_start_time",
		"grace_before_end_time", "grace_after_end_time",
		"overtime_threshold", "created_at", "updated_at",
	}
	mock.ExpectQuery(`FROM auto_shifts(?s).*ORDER BY id ASC`).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "DAY", "09:00:00", "17:00:00",
				"00:15:00", "00:15:00", "00:15:00", "00:15:00", "00:30:00", now, now).
			AddRow(int64(2), "EVENING", "13:00:00", "21:00:00",
				"00:15:00", "00:15:00", "00:15:00", "00:15:00", "00:30:00", now, now))

	shifts, err := repo.ListAuto(context.Background())

	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "DAY", shifts[0].Name)
	assert.Equal(t, "EVENING", shifts[1].Name)
	assert.Equal(t, timeutil.FromClock(9, 0, 0), shifts[0].StartTime)
	assert.Equal(t, 15*time.Minute, shifts[0].GraceBeforeStartTime)
	assert.Equal(t, 30*time.Minute, shifts[0].OvertimeThreshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFixedDuplicateName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShiftRepository(mock)

	fs := shift.FixedShift{
		Name:              "GENERAL",
		StartTime:         timeutil.FromClock(9, 0, 0),
		EndTime:           timeutil.FromClock(17, 0, 0),
		GracePeriod:       15 * time.Minute,
		OvertimeThreshold: 30 * time.Minute,
	}

	mock.ExpectQuery(`INSERT INTO shifts`).
		WithArgs("GENERAL", pgTime(fs.StartTime), pgTime(fs.EndTime),
			pgInterval(fs.GracePeriod), pgInterval(fs.OvertimeThreshold)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.CreateFixed(context.Background(), fs)

	assert.ErrorIs(t, err, shift.ErrNameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAutoReturnsGeneratedID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShiftRepository(mock)

	as := shift.AutoShift{
		Name:                 "night",
		StartTime:            timeutil.FromClock(13, 0, 0),
		EndTime:              timeutil.FromClock(21, 0, 0),
		GraceBeforeStartTime: 15 * time.Minute,
		GraceAfterStartTime:  15 * time.Minute,
		GraceBeforeEndTime:   15 * time.Minute,
		GraceAfterEndTime:    15 * time.Minute,
		OvertimeThreshold:    30 * time.Minute,
	}

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO auto_shifts`).
		WithArgs("night", pgTime(as.StartTime), pgTime(as.EndTime),
			pgInterval(as.GraceBeforeStartTime), pgInterval(as.GraceAfterStartTime),
			pgInterval(as.GraceBeforeEndTime), pgInterval(as.GraceAfterEndTime),
			pgInterval(as.OvertimeThreshold)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(int64(7), "NIGHT", now, now))

	created, err := repo.CreateAuto(context.Background(), as)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	// The database upper-cases the stored name.
	assert.Equal(t, "NIGHT", created.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

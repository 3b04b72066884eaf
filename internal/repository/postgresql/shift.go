package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type shiftRepository struct {
	db database.Querier
}

func NewShiftRepository(db database.Querier) shift.Repository {
	return &shiftRepository{db: db}
}

// ListFixed implements shift.Repository.
func (s *shiftRepository) ListFixed(ctx context.Context) ([]shift.FixedShift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, start_time, end_time, grace_period, overtime_threshold, created_at, updated_at
		FROM shifts
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.FixedShift
	for rows.Next() {
		var fs shift.FixedShift
		var start, end pgtype.Time
		var grace, threshold pgtype.Interval
		if err := rows.Scan(&fs.ID, &fs.Name, &start, &end, &grace, &threshold, &fs.CreatedAt, &fs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed shift: %w", err)
		}
		fs.StartTime = timeOfDay(start)
		fs.EndTime = timeOfDay(end)
		fs.GracePeriod = duration(grace)
		fs.OvertimeThreshold = duration(threshold)
		shifts = append(shifts, fs)
	}

	return shifts, rows.Err()
}

// ListAuto implements shift.Repository. Catalog order is id ascending; the
// resolver's first-match tie-break depends on it.
func (s *shiftRepository) ListAuto(ctx context.Context) ([]shift.AutoShift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, start_time, end_time,
			   grace_before_start_time, grace_after_start_time,
			   grace_before_end_time, grace_after_end_time,
			   overtime_threshold, created_at, updated_at
		FROM auto_shifts
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query auto shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.AutoShift
	for rows.Next() {
		var as shift.AutoShift
		var start, end pgtype.Time
		var gbs, gas, gbe, gae, threshold pgtype.Interval
		if err := rows.Scan(&as.ID, &as.Name, &start, &end, &gbs, &gas, &gbe, &gae, &threshold, &as.CreatedAt, &as.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan auto shift: %w", err)
		}
		as.StartTime = timeOfDay(start)
		as.EndTime = timeOfDay(end)
		as.GraceBeforeStartTime = duration(gbs)
		as.GraceAfterStartTime = duration(gas)
		as.GraceBeforeEndTime = duration(gbe)
		as.GraceAfterEndTime = duration(gae)
		as.OvertimeThreshold = duration(threshold)
		shifts = append(shifts, as)
	}

	return shifts, rows.Err()
}

// CreateFixed implements shift.Repository.
func (s *shiftRepository) CreateFixed(ctx context.Context, fs shift.FixedShift) (shift.FixedShift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, grace_period, overtime_threshold)
		VALUES (UPPER($1), $2, $3, $4, $5)
		RETURNING id, name, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		fs.Name,
		pgTime(fs.StartTime),
		pgTime(fs.EndTime),
		pgInterval(fs.GracePeriod),
		pgInterval(fs.OvertimeThreshold),
	).Scan(&fs.ID, &fs.Name, &fs.CreatedAt, &fs.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return shift.FixedShift{}, shift.ErrNameExists
		}
		return shift.FixedShift{}, fmt.Errorf("failed to create fixed shift: %w", err)
	}

	return fs, nil
}

// CreateAuto implements shift.Repository.
func (s *shiftRepository) CreateAuto(ctx context.Context, as shift.AutoShift) (shift.AutoShift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO auto_shifts (
			name, start_time, end_time,
			grace_before_start_time, grace_after_start_time,
			grace_before_end_time, grace_after_end_time,
			overtime_threshold
		) VALUES (UPPER($1), $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		as.Name,
		pgTime(as.StartTime),
		pgTime(as.EndTime),
		pgInterval(as.GraceBeforeStartTime),
		pgInterval(as.GraceAfterStartTime),
		pgInterval(as.GraceBeforeEndTime),
		pgInterval(as.GraceAfterEndTime),
		pgInterval(as.OvertimeThreshold),
	).Scan(&as.ID, &as.Name, &as.CreatedAt, &as.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return shift.AutoShift{}, shift.ErrNameExists
		}
		return shift.AutoShift{}, fmt.Errorf("failed to create auto shift: %w", err)
	}

	return as, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

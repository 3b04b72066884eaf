package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.Repository. The write goes through the
// (employee_id, log_date) uniqueness constraint so concurrent re-runs can
// never duplicate a key.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, log_date, first_punch, last_punch, direction, terminal,
			shift_name, status, total_time, late_entry, early_exit, overtime
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, log_date) DO UPDATE SET
			first_punch = EXCLUDED.first_punch,
			last_punch  = EXCLUDED.last_punch,
			direction   = EXCLUDED.direction,
			terminal    = EXCLUDED.terminal,
			shift_name  = EXCLUDED.shift_name,
			status      = EXCLUDED.status,
			total_time  = EXCLUDED.total_time,
			late_entry  = EXCLUDED.late_entry,
			early_exit  = EXCLUDED.early_exit,
			overtime    = EXCLUDED.overtime,
			updated_at  = NOW()
	`

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := q.Exec(ctx, query,
		id,
		rec.EmployeeID,
		rec.Date,
		pgTimePtr(rec.FirstPunch),
		pgTimePtr(rec.LastPunch),
		rec.Direction,
		rec.Terminal,
		rec.MatchedShift,
		string(rec.Status),
		pgIntervalPtr(rec.TotalTime),
		pgIntervalPtr(rec.LateEntry),
		pgIntervalPtr(rec.EarlyExit),
		pgIntervalPtr(rec.Overtime),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, log_date, first_punch, last_punch, direction, terminal,
			   shift_name, status, total_time, late_entry, early_exit, overtime,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND log_date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere, args := buildAttendanceWhere(filter)
	argIdx := len(args) + 1

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.log_date, a.first_punch, a.last_punch, a.direction, a.terminal,
			   a.shift_name, a.status, a.total_time, a.late_entry, a.early_exit, a.overtime,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE %s
		ORDER BY a.log_date DESC, a.employee_id ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// ListForExport implements attendance.Repository.
func (a *attendanceRepository) ListForExport(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere, args := buildAttendanceWhere(filter)

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.log_date, a.first_punch, a.last_punch, a.direction, a.terminal,
			   a.shift_name, a.status, a.total_time, a.late_entry, a.early_exit, a.overtime,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE %s
		ORDER BY a.log_date ASC, a.employee_id ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances for export: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// LatestDate implements attendance.Repository.
func (a *attendanceRepository) LatestDate(ctx context.Context) (time.Time, error) {
	q := GetQuerier(ctx, a.db)

	var latest *time.Time
	if err := q.QueryRow(ctx, `SELECT MAX(log_date) FROM attendances`).Scan(&latest); err != nil {
		return time.Time{}, fmt.Errorf("failed to get latest attendance date: %w", err)
	}
	if latest == nil {
		return time.Time{}, attendance.ErrNoLatestDate
	}

	return *latest, nil
}

// SnapshotForDate implements attendance.Repository.
func (a *attendanceRepository) SnapshotForDate(ctx context.Context, date time.Time) (attendance.Snapshot, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'P'),
			COUNT(*) FILTER (WHERE status = 'A'),
			COUNT(*) FILTER (WHERE late_entry IS NOT NULL),
			COUNT(*) FILTER (WHERE early_exit IS NOT NULL),
			COUNT(*) FILTER (WHERE overtime IS NOT NULL),
			COUNT(*) FILTER (WHERE first_punch IS NOT NULL),
			COUNT(*) FILTER (WHERE last_punch IS NOT NULL AND last_punch <> first_punch)
		FROM attendances
		WHERE log_date = $1
	`

	snap := attendance.Snapshot{Date: date}
	err := q.QueryRow(ctx, query, date).Scan(
		&snap.PresentCount,
		&snap.AbsentCount,
		&snap.LateCount,
		&snap.EarlyCount,
		&snap.OvertimeCount,
		&snap.CheckinCount,
		&snap.CheckoutCount,
	)
	if err != nil {
		return attendance.Snapshot{}, fmt.Errorf("failed to get attendance snapshot: %w", err)
	}

	return snap, nil
}

// DailyMetrics implements attendance.Repository.
func (a *attendanceRepository) DailyMetrics(ctx context.Context, from, to time.Time) ([]attendance.DayMetrics, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			log_date,
			COUNT(*) FILTER (WHERE status = 'P'),
			COUNT(*) FILTER (WHERE status = 'A'),
			COUNT(*) FILTER (WHERE late_entry IS NOT NULL),
			COUNT(*) FILTER (WHERE early_exit IS NOT NULL),
			COUNT(*) FILTER (WHERE overtime IS NOT NULL)
		FROM attendances
		WHERE log_date BETWEEN $1 AND $2
		GROUP BY log_date
		ORDER BY log_date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}
	defer rows.Close()

	var metrics []attendance.DayMetrics
	for rows.Next() {
		var m attendance.DayMetrics
		if err := rows.Scan(&m.Date, &m.Present, &m.Absent, &m.LateEntry, &m.EarlyExit, &m.Overtime); err != nil {
			return nil, fmt.Errorf("failed to scan daily metrics: %w", err)
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}

func buildAttendanceWhere(filter attendance.Filter) (string, []interface{}) {
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		baseWhere += fmt.Sprintf(" AND e.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}
	if filter.Date != nil {
		baseWhere += fmt.Sprintf(" AND a.log_date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND a.log_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND a.log_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}
	// Zero durations are stored as NULL, so NOT NULL means a positive value.
	if filter.LateEntryNotNull {
		baseWhere += " AND a.late_entry IS NOT NULL"
	}
	if filter.EarlyExitNotNull {
		baseWhere += " AND a.early_exit IS NOT NULL"
	}
	if filter.OvertimeNotNull {
		baseWhere += " AND a.overtime IS NOT NULL"
	}

	return baseWhere, args
}

func scanRecord(row pgx.Row, withEmployee bool) (attendance.Record, error) {
	var rec attendance.Record
	var first, last pgtype.Time
	var total, late, early, overtime pgtype.Interval
	var status string

	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.Date, &first, &last, &rec.Direction, &rec.Terminal,
		&rec.MatchedShift, &status, &total, &late, &early, &overtime,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.EmployeeName)
	}

	if err := row.Scan(dest...); err != nil {
		return attendance.Record{}, err
	}

	rec.FirstPunch = timeOfDayPtr(first)
	rec.LastPunch = timeOfDayPtr(last)
	rec.Status = attendance.Status(status)
	rec.TotalTime = durationPtr(total)
	rec.LateEntry = durationPtr(late)
	rec.EarlyExit = durationPtr(early)
	rec.Overtime = durationPtr(overtime)
	return rec, nil
}

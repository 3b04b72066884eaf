package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type punchRepository struct {
	db database.Querier
}

func NewPunchRepository(db database.Querier) punch.Repository {
	return &punchRepository{db: db}
}

// ListForDay implements punch.Repository.
func (p *punchRepository) ListForDay(ctx context.Context, employeeID string, date time.Time) ([]punch.Event, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, source_id, employee_id, log_date, log_time, direction, terminal, serial_number, created_at
		FROM logs
		WHERE employee_id = $1 AND log_date = $2
		ORDER BY log_time ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches for day: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// DayBounds implements punch.Repository.
func (p *punchRepository) DayBounds(ctx context.Context, employeeID string, date time.Time) (*punch.DayBounds, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT
			MIN(log_time),
			MAX(log_time),
			(
				SELECT direction
				FROM logs
				WHERE employee_id = $1 AND log_date = $2
				ORDER BY log_time DESC, created_at DESC
				LIMIT 1
			) AS last_direction,
			(
				SELECT terminal
				FROM logs
				WHERE employee_id = $1 AND log_date = $2
				ORDER BY log_time DESC, created_at DESC
				LIMIT 1
			) AS last_terminal
		FROM logs
		WHERE employee_id = $1 AND log_date = $2
	`

	var first, last pgtype.Time
	var direction, terminal *string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&first, &last, &direction, &terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to get day bounds: %w", err)
	}

	if !first.Valid || !last.Valid {
		return nil, nil // no punches that day
	}

	bounds := &punch.DayBounds{
		First: timeOfDay(first),
		Last:  timeOfDay(last),
	}
	if direction != nil {
		bounds.LastDirection = *direction
	}
	if terminal != nil {
		bounds.LastTerminal = *terminal
	}
	return bounds, nil
}

// List implements punch.Repository.
func (p *punchRepository) List(ctx context.Context, filter punch.Filter) ([]punch.Event, int64, error) {
	q := GetQuerier(ctx, p.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil {
		baseWhere += fmt.Sprintf(" AND log_date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND log_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND log_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM logs WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
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
		SELECT id, source_id, employee_id, log_date, log_time, direction, terminal, serial_number, created_at
		FROM logs
		WHERE %s
		ORDER BY log_date DESC, log_time DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch: %w", err)
		}
		events = append(events, ev)
	}

	return events, total, rows.Err()
}

// BulkUpsert implements punch.Repository.
func (p *punchRepository) BulkUpsert(ctx context.Context, events []punch.Event) (int64, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO logs (id, source_id, employee_id, log_date, log_time, direction, terminal, serial_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (source_id) DO NOTHING
	`

	var inserted int64
	for _, ev := range events {
		id := ev.ID
		if id == "" {
			id = uuid.NewString()
		}
		tag, err := q.Exec(ctx, query,
			id,
			ev.SourceID,
			ev.EmployeeID,
			ev.Date,
			pgTime(ev.Time),
			ev.Direction,
			ev.Terminal,
			ev.SerialNumber,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to upsert punch %d: %w", ev.SourceID, err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

func scanEvent(row pgx.Row) (punch.Event, error) {
	var ev punch.Event
	var logTime pgtype.Time
	err := row.Scan(
		&ev.ID, &ev.SourceID, &ev.EmployeeID, &ev.Date, &logTime,
		&ev.Direction, &ev.Terminal, &ev.SerialNumber, &ev.CreatedAt,
	)
	if err != nil {
		return punch.Event{}, err
	}
	ev.Time = timeOfDay(logTime)
	return ev, nil
}

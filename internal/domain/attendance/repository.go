package attendance

import (
	"context"
	"time"
)

// Repository defines data access for derived attendance records.
type Repository interface {
	// Upsert atomically creates or replaces the record keyed by
	// (employee_id, date). The write races only against itself for the same
	// key, so it must go through the uniqueness constraint, not a
	// read-then-write.
	Upsert(ctx context.Context, rec Record) error

	// GetByEmployeeAndDate returns nil, nil when no record exists. Used for
	// the previous-day carry-over lookup.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListForExport returns all records matching the filter without
	// pagination, date ascending, for the spreadsheet export.
	ListForExport(ctx context.Context, filter Filter) ([]Record, error)

	// LatestDate is the most recent processed date; ErrNoLatestDate when
	// the table is empty.
	LatestDate(ctx context.Context) (time.Time, error)

	// SnapshotForDate computes the dashboard counters for one date.
	SnapshotForDate(ctx context.Context, date time.Time) (Snapshot, error)

	// DailyMetrics returns per-day counters over [from, to].
	DailyMetrics(ctx context.Context, from, to time.Time) ([]DayMetrics, error)
}

// Filter narrows attendance listings. The *NotNull flags keep only records
// where the duration is present (zero values are never stored, so present
// means positive).
type Filter struct {
	EmployeeID       *string
	EmployeeName     *string
	Date             *time.Time
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *Status
	LateEntryNotNull bool
	EarlyExitNotNull bool
	OvertimeNotNull  bool
	Page             int
	Limit            int
}

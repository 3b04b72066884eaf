package punch

import (
	"context"
	"time"
)

// Repository defines read access to the punch event store plus the bulk
// write path used by the importer. The computation engine never mutates
// events.
type Repository interface {
	// ListForDay returns all punches for one employee-day ordered by
	// time-of-day ascending, insertion order for ties. Empty slice when the
	// employee never punched that day.
	ListForDay(ctx context.Context, employeeID string, date time.Time) ([]Event, error)

	// DayBounds returns the min/max punch aggregate for one employee-day,
	// or nil when no punches exist.
	DayBounds(ctx context.Context, employeeID string, date time.Time) (*DayBounds, error)

	// List retrieves punch events with filters and pagination for the API.
	List(ctx context.Context, filter Filter) ([]Event, int64, error)

	// BulkUpsert inserts events keyed by their terminal source id; rows
	// already present are left untouched. Returns the number of new rows.
	BulkUpsert(ctx context.Context, events []Event) (int64, error)
}

// Filter narrows the punch listing.
type Filter struct {
	EmployeeID *string
	Date       *time.Time
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

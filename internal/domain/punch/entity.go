package punch

import (
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
)

// Event is one biometric punch captured by a door terminal. Events are
// append-only; the importer copies them from the terminal vendor database and
// nothing in this system mutates them afterwards.
type Event struct {
	ID           string
	SourceID     int64 // record id in the terminal database, dedup key
	EmployeeID   string
	Date         time.Time
	Time         timeutil.TimeOfDay
	Direction    string // raw device direction, e.g. "in" / "out"
	Terminal     string // device short name
	SerialNumber string
	CreatedAt    time.Time
}

// DayBounds is the min/max aggregate over one employee-day, with the
// direction and terminal of the latest punch for display. The fixed-shift
// path only needs this, not the full event list.
type DayBounds struct {
	First         timeutil.TimeOfDay
	Last          timeutil.TimeOfDay
	LastDirection string
	LastTerminal  string
}

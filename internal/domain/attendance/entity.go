package attendance

import (
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
)

// Status is the Present/Absent classification of one employee-day.
type Status string

const (
	StatusPresent Status = "P"
	StatusAbsent  Status = "A"
)

// Record is the derived attendance for one employee-day, unique on
// (employee, date). The batch produces and replaces these; re-processing the
// same key overwrites in place.
//
// LateEntry, EarlyExit and Overtime are nil when the computed value is not
// positive: a zero duration is never persisted.
type Record struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	FirstPunch   *timeutil.TimeOfDay
	LastPunch    *timeutil.TimeOfDay
	Direction    *string // direction of the last punch, for display
	Terminal     *string // terminal short name of the last punch
	MatchedShift *string
	Status       Status
	TotalTime    *time.Duration
	LateEntry    *time.Duration
	EarlyExit    *time.Duration
	Overtime     *time.Duration
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName *string
}

// DayMetrics are the per-day counters behind the monthly metrics endpoint.
type DayMetrics struct {
	Date      time.Time
	Present   int64
	Absent    int64
	LateEntry int64
	EarlyExit int64
	Overtime  int64
}

// Snapshot summarises the latest processed date for the dashboard.
type Snapshot struct {
	Date          time.Time
	PresentCount  int64
	AbsentCount   int64
	LateCount     int64
	EarlyCount    int64
	OvertimeCount int64
	CheckinCount  int64
	CheckoutCount int64
}

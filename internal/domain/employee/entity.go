package employee

import "time"

type Employee struct {
	ID             string
	FullName       string
	Email          *string
	DeviceEnrollID string
	// ShiftName references a fixed shift definition by name. Nil means the
	// employee's shift is auto-detected from punch timing.
	ShiftName *string
	JobStatus string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFixedShift reports whether a fixed assignment governs this employee's
// attendance. A fixed assignment always wins over auto-detection.
func (e Employee) HasFixedShift() bool {
	return e.ShiftName != nil && *e.ShiftName != ""
}

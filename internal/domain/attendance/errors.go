package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrNoLatestDate   = errors.New("no attendance records processed yet")
)

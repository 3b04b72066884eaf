package timeutil

import (
	"fmt"
	"time"
)

// Day is the length of one calendar day on the punch clock.
const Day = 24 * time.Hour

// TimeOfDay is a clock time within a calendar day, stored as the offset from
// midnight. Punch events and shift boundaries are TIME columns, so comparing
// and subtracting them as offsets avoids fabricating timestamps on an
// arbitrary date.
type TimeOfDay time.Duration

// FromClock builds a TimeOfDay from hour/minute/second components.
func FromClock(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// FromTime extracts the clock portion of t.
func FromTime(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return FromClock(h, m, s)
}

// Parse accepts "15:04:05" or "15:04".
func Parse(s string) (TimeOfDay, error) {
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", s)
}

// Valid reports whether t falls within [00:00:00, 24:00:00).
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < TimeOfDay(Day)
}

// Add shifts t by d without wrapping. Callers clamp the result when a window
// boundary must stay inside the day.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d)
}

// Sub returns the signed distance from u to t.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t) - time.Duration(u)
}

// ClampToDay pins t into [00:00:00, 24:00:00). Shift windows computed near
// midnight would otherwise leak into the neighbouring day.
func (t TimeOfDay) ClampToDay() TimeOfDay {
	if t < 0 {
		return 0
	}
	if t >= TimeOfDay(Day) {
		return TimeOfDay(Day) - TimeOfDay(time.Second)
	}
	return t
}

// At anchors t on the given calendar date in date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(t))
}

// Duration returns t as the offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Ptr is a convenience for the nullable columns on attendance records.
func (t TimeOfDay) Ptr() *TimeOfDay {
	return &t
}

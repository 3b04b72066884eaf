package postgresql

import (
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5/pgtype"
)

// TIME and INTERVAL columns round-trip through pgtype; these helpers keep the
// conversions in one place.

func pgTime(t timeutil.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func pgTimePtr(t *timeutil.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgTime(*t)
}

func timeOfDay(t pgtype.Time) timeutil.TimeOfDay {
	return timeutil.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}

func timeOfDayPtr(t pgtype.Time) *timeutil.TimeOfDay {
	if !t.Valid {
		return nil
	}
	v := timeOfDay(t)
	return &v
}

func pgInterval(d time.Duration) pgtype.Interval {
	return pgtype.Interval{Microseconds: d.Microseconds(), Valid: true}
}

func pgIntervalPtr(d *time.Duration) pgtype.Interval {
	if d == nil {
		return pgtype.Interval{}
	}
	return pgInterval(*d)
}

func duration(iv pgtype.Interval) time.Duration {
	d := time.Duration(iv.Microseconds) * time.Microsecond
	d += time.Duration(iv.Days) * 24 * time.Hour
	// Months only appear if someone hand-edits the table; approximate.
	d += time.Duration(iv.Months) * 30 * 24 * time.Hour
	return d
}

func durationPtr(iv pgtype.Interval) *time.Duration {
	if !iv.Valid {
		return nil
	}
	v := duration(iv)
	return &v
}

package attendance

import (
	"sort"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
)

// Aggregator derives the attendance fields for one employee-day from the
// day's punches and the resolved shift. It holds no state beyond the shift
// catalog and is safe for concurrent use.
type Aggregator struct {
	catalog *shift.Catalog
}

func NewAggregator(catalog *shift.Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// AggregateAbsent is the record for a day with no punches at all.
func (a *Aggregator) AggregateAbsent(employeeID string, date time.Time) attendance.Record {
	return attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusAbsent,
	}
}

// AggregateFixed computes the fixed-shift day from the min/max punch
// aggregate. The employee punched at least once, so the day is Present;
// whether the punches fit the shift shows up as late/early/overtime.
func (a *Aggregator) AggregateFixed(employeeID string, date time.Time, bounds punch.DayBounds, fs shift.FixedShift) attendance.Record {
	first := bounds.First
	last := bounds.Last
	total := last.Sub(first)

	rec := attendance.Record{
		EmployeeID:   employeeID,
		Date:         date,
		FirstPunch:   first.Ptr(),
		LastPunch:    last.Ptr(),
		Direction:    strPtr(bounds.LastDirection),
		Terminal:     strPtr(bounds.LastTerminal),
		MatchedShift: strPtr(fs.Name),
		Status:       attendance.StatusPresent,
		TotalTime:    &total,
		LateEntry:    positiveOrNil(first.Sub(fs.StartTime) - fs.GracePeriod),
		EarlyExit:    positiveOrNil(fs.EndTime.Sub(last) - fs.GracePeriod),
	}

	// Overtime accrues on both sides of the shift once the punch is past
	// the threshold: before start − threshold, and after end + threshold.
	var overtime time.Duration
	if d := fs.StartTime.Sub(first) - fs.OvertimeThreshold; d > 0 {
		overtime += d
	}
	if d := last.Sub(fs.EndTime) - fs.OvertimeThreshold; d > 0 {
		overtime += d
	}
	rec.Overtime = positiveOrNil(overtime)

	return rec
}

// AggregateAuto computes the auto-detection day: after carry-over
// suppression, each punch is checked against every catalog definition in
// order, assigning the first punch from a start window and the last from an
// end window. Late entry and early exit are not derived on this path.
func (a *Aggregator) AggregateAuto(employeeID string, date time.Time, punches []punch.Event, prevLast *timeutil.TimeOfDay) attendance.Record {
	rec := attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusAbsent,
	}

	sort.SliceStable(punches, func(i, j int) bool { return punches[i].Time < punches[j].Time })

	eligible := eligiblePunches(punches, prevLast)
	if len(eligible) == 0 {
		// Every punch belonged to yesterday's overnight shift.
		return rec
	}

	var (
		first   *timeutil.TimeOfDay
		last    *timeutil.TimeOfDay
		lastEvt punch.Event
		matched *shift.AutoShift
	)

	for i := range eligible {
		p := eligible[i]
		for j := range a.catalog.Auto {
			as := &a.catalog.Auto[j]
			if first == nil && as.InStartWindow(p.Time) {
				t := p.Time
				first = &t
				matched = as
				// The same punch may also close this shift or a later
				// one, so the end windows still get checked.
			}
			if as.InEndWindow(p.Time) {
				t := p.Time
				last = &t
				lastEvt = p
				if matched == nil {
					matched = as
				}
				if first != nil {
					total := last.Sub(*first)
					rec.TotalTime = &total
					if total > as.Duration()+as.OvertimeThreshold {
						ot := total - as.Duration()
						rec.Overtime = &ot
					} else {
						rec.Overtime = nil
					}
				}
				break
			}
		}
	}

	if first == nil && last == nil {
		// Punches exist but none fit a catalog window. The raw bounds are
		// still recorded; the shift-derived fields stay empty.
		lo := eligible[0]
		hi := eligible[len(eligible)-1]
		rec.FirstPunch = lo.Time.Ptr()
		rec.LastPunch = hi.Time.Ptr()
		rec.Direction = strPtr(hi.Direction)
		rec.Terminal = strPtr(hi.Terminal)
		return rec
	}

	// Whichever bound no window assigned falls back to the raw punch, so
	// the record always carries first/last when punches exist. Total and
	// overtime stay window-derived only.
	if first == nil {
		first = eligible[0].Time.Ptr()
	}
	if last == nil {
		hi := eligible[len(eligible)-1]
		last = hi.Time.Ptr()
		lastEvt = hi
	}

	rec.Status = attendance.StatusPresent
	rec.FirstPunch = first
	rec.LastPunch = last
	if matched != nil {
		rec.MatchedShift = strPtr(matched.Name)
	}
	rec.Direction = strPtr(lastEvt.Direction)
	rec.Terminal = strPtr(lastEvt.Terminal)

	return rec
}

// positiveOrNil returns nil unless d is strictly positive. Zero and negative
// computed durations are never persisted.
func positiveOrNil(d time.Duration) *time.Duration {
	if d <= 0 {
		return nil
	}
	return &d
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

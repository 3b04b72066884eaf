package attendance

import (
	"testing"
	"time"

	domain "github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func tod(hour, minute int) timeutil.TimeOfDay {
	return timeutil.FromClock(hour, minute, 0)
}

func punchAt(hour, minute int) punch.Event {
	return punch.Event{
		EmployeeID: "EMP001",
		Date:       testDate,
		Time:       tod(hour, minute),
		Direction:  "out",
		Terminal:   "GATE1",
	}
}

func dayShift(t *testing.T) shift.FixedShift {
	t.Helper()
	return shift.FixedShift{
		Name:              "GENERAL",
		StartTime:         tod(9, 0),
		EndTime:           tod(17, 0),
		GracePeriod:       15 * time.Minute,
		OvertimeThreshold: 30 * time.Minute,
	}
}

func autoCatalog(t *testing.T) *shift.Catalog {
	t.Helper()
	catalog, err := shift.NewCatalog(nil, []shift.AutoShift{
		{
			Name:                 "DAY",
			StartTime:            tod(9, 0),
			EndTime:              tod(17, 0),
			GraceBeforeStartTime: 15 * time.Minute,
			GraceAfterStartTime:  15 * time.Minute,
			GraceBeforeEndTime:   15 * time.Minute,
			GraceAfterEndTime:    15 * time.Minute,
			OvertimeThreshold:    30 * time.Minute,
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestAggregateAbsent(t *testing.T) {
	agg := NewAggregator(&shift.Catalog{})

	rec := agg.AggregateAbsent("EMP001", testDate)

	assert.Equal(t, domain.StatusAbsent, rec.Status)
	assert.Nil(t, rec.FirstPunch)
	assert.Nil(t, rec.LastPunch)
	assert.Nil(t, rec.TotalTime)
	assert.Nil(t, rec.LateEntry)
	assert.Nil(t, rec.EarlyExit)
	assert.Nil(t, rec.Overtime)
	assert.Nil(t, rec.MatchedShift)
}

func TestAggregateFixed(t *testing.T) {
	agg := NewAggregator(&shift.Catalog{})
	fs := dayShift(t)

	tests := []struct {
		name      string
		first     timeutil.TimeOfDay
		last      timeutil.TimeOfDay
		wantTotal time.Duration
		wantLate  *time.Duration
		wantEarly *time.Duration
		wantOT    *time.Duration
	}{
		{
			name:      "inside grace, no overtime",
			first:     tod(9, 10),
			last:      tod(17, 5),
			wantTotal: 7*time.Hour + 55*time.Minute,
		},
		{
			name:      "overtime on both sides",
			first:     tod(8, 20),
			last:      tod(17, 45),
			wantTotal: 9*time.Hour + 25*time.Minute,
			wantOT:    durPtr(25 * time.Minute),
		},
		{
			name:      "late entry past grace",
			first:     tod(9, 20),
			last:      tod(17, 0),
			wantTotal: 7*time.Hour + 40*time.Minute,
			wantLate:  durPtr(5 * time.Minute),
		},
		{
			name:      "early exit past grace",
			first:     tod(9, 0),
			last:      tod(16, 30),
			wantTotal: 7*time.Hour + 30*time.Minute,
			wantEarly: durPtr(15 * time.Minute),
		},
		{
			name:      "exactly on grace boundary stores null not zero",
			first:     tod(9, 15),
			last:      tod(16, 45),
			wantTotal: 7*time.Hour + 30*time.Minute,
		},
		{
			name:      "exactly on overtime threshold stores null not zero",
			first:     tod(8, 30),
			last:      tod(17, 30),
			wantTotal: 9 * time.Hour,
			wantLate:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := punch.DayBounds{
				First:         tt.first,
				Last:          tt.last,
				LastDirection: "out",
				LastTerminal:  "GATE1",
			}

			rec := agg.AggregateFixed("EMP001", testDate, bounds, fs)

			assert.Equal(t, domain.StatusPresent, rec.Status)
			require.NotNil(t, rec.FirstPunch)
			require.NotNil(t, rec.LastPunch)
			assert.Equal(t, tt.first, *rec.FirstPunch)
			assert.Equal(t, tt.last, *rec.LastPunch)
			require.NotNil(t, rec.TotalTime)
			assert.Equal(t, tt.wantTotal, *rec.TotalTime)
			assert.Equal(t, tt.wantLate, rec.LateEntry)
			assert.Equal(t, tt.wantEarly, rec.EarlyExit)
			assert.Equal(t, tt.wantOT, rec.Overtime)
			require.NotNil(t, rec.MatchedShift)
			assert.Equal(t, "GENERAL", *rec.MatchedShift)
			require.NotNil(t, rec.Direction)
			assert.Equal(t, "out", *rec.Direction)
		})
	}
}

func TestAggregateAutoMatchesCatalogShift(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	rec := agg.AggregateAuto("EMP001", testDate, []punch.Event{punchAt(8, 50), punchAt(17, 10)}, nil)

	assert.Equal(t, domain.StatusPresent, rec.Status)
	require.NotNil(t, rec.MatchedShift)
	assert.Equal(t, "DAY", *rec.MatchedShift)
	require.NotNil(t, rec.FirstPunch)
	assert.Equal(t, tod(8, 50), *rec.FirstPunch)
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(17, 10), *rec.LastPunch)
	require.NotNil(t, rec.TotalTime)
	assert.Equal(t, 8*time.Hour+20*time.Minute, *rec.TotalTime)
	assert.Nil(t, rec.Overtime)
	assert.Nil(t, rec.LateEntry)
	assert.Nil(t, rec.EarlyExit)
}

func TestAggregateAutoOvertime(t *testing.T) {
	catalog, err := shift.NewCatalog(nil, []shift.AutoShift{
		{
			Name:                 "DAY",
			StartTime:            tod(9, 0),
			EndTime:              tod(17, 0),
			GraceBeforeStartTime: 15 * time.Minute,
			GraceAfterStartTime:  15 * time.Minute,
			GraceBeforeEndTime:   15 * time.Minute,
			GraceAfterEndTime:    time.Hour,
			OvertimeThreshold:    30 * time.Minute,
		},
	})
	require.NoError(t, err)
	agg := NewAggregator(catalog)

	rec := agg.AggregateAuto("EMP001", testDate, []punch.Event{punchAt(8, 50), punchAt(17, 50)}, nil)

	assert.Equal(t, domain.StatusPresent, rec.Status)
	require.NotNil(t, rec.TotalTime)
	assert.Equal(t, 9*time.Hour, *rec.TotalTime)
	require.NotNil(t, rec.Overtime)
	assert.Equal(t, time.Hour, *rec.Overtime)
}

func TestAggregateAutoCarryOverSuppressesWholeDay(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	prevLast := tod(23, 0)
	rec := agg.AggregateAuto("EMP001", testDate, []punch.Event{punchAt(5, 30)}, &prevLast)

	assert.Equal(t, domain.StatusAbsent, rec.Status)
	assert.Nil(t, rec.FirstPunch)
	assert.Nil(t, rec.LastPunch)
	assert.Nil(t, rec.TotalTime)
	assert.Nil(t, rec.MatchedShift)
}

func TestAggregateAutoCarryOverEndsAtLaterPunch(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	prevLast := tod(6, 0)
	punches := []punch.Event{punchAt(5, 30), punchAt(8, 50), punchAt(17, 10)}
	rec := agg.AggregateAuto("EMP001", testDate, punches, &prevLast)

	assert.Equal(t, domain.StatusPresent, rec.Status)
	require.NotNil(t, rec.FirstPunch)
	assert.Equal(t, tod(8, 50), *rec.FirstPunch)
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(17, 10), *rec.LastPunch)
}

func TestAggregateAutoNoWindowMatchKeepsRawBounds(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	punches := []punch.Event{punchAt(12, 0), punchAt(13, 30)}
	rec := agg.AggregateAuto("EMP001", testDate, punches, nil)

	assert.Equal(t, domain.StatusAbsent, rec.Status)
	require.NotNil(t, rec.FirstPunch)
	assert.Equal(t, tod(12, 0), *rec.FirstPunch)
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(13, 30), *rec.LastPunch)
	assert.Nil(t, rec.MatchedShift)
	assert.Nil(t, rec.TotalTime)
	assert.Nil(t, rec.Overtime)
}

func TestAggregateAutoFirstCatalogEntryWins(t *testing.T) {
	catalog, err := shift.NewCatalog(nil, []shift.AutoShift{
		{
			Name:                 "MORNING",
			StartTime:            tod(9, 0),
			EndTime:              tod(13, 0),
			GraceBeforeStartTime: 30 * time.Minute,
			GraceAfterStartTime:  30 * time.Minute,
		},
		{
			Name:                 "DAY",
			StartTime:            tod(9, 0),
			EndTime:              tod(17, 0),
			GraceBeforeStartTime: 30 * time.Minute,
			GraceAfterStartTime:  30 * time.Minute,
		},
	})
	require.NoError(t, err)
	agg := NewAggregator(catalog)

	rec := agg.AggregateAuto("EMP001", testDate, []punch.Event{punchAt(9, 0)}, nil)

	require.NotNil(t, rec.MatchedShift)
	assert.Equal(t, "MORNING", *rec.MatchedShift)
}

func TestAggregateAutoSinglePunchStartWindowOnly(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	rec := agg.AggregateAuto("EMP001", testDate, []punch.Event{punchAt(9, 5)}, nil)

	assert.Equal(t, domain.StatusPresent, rec.Status)
	require.NotNil(t, rec.FirstPunch)
	assert.Equal(t, tod(9, 5), *rec.FirstPunch)
	// The single punch is also the raw last; no end window matched, so no
	// total is derived from it.
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(9, 5), *rec.LastPunch)
	assert.Nil(t, rec.TotalTime)
}

func TestAggregateAutoSinglePunchInBothWindows(t *testing.T) {
	// Wide graces on a short shift put 09:30 inside the start window
	// [08:00, 10:00] and the end window [09:00, 11:00] at once. The punch
	// both opens and closes the shift, so total is a stored zero rather
	// than a raw-bound fallback.
	catalog, err := shift.NewCatalog(nil, []shift.AutoShift{
		{
			Name:                 "SHORT",
			StartTime:            tod(9, 0),
			EndTime:              tod(10, 0),
			GraceBeforeStartTime: time.Hour,
			GraceAfterStartTime:  time.Hour,
			GraceBeforeEndTime:   time.Hour,
			GraceAfterEndTime:    time.Hour,
			OvertimeThreshold:    30 * time.Minute,
		},
	})
	require.NoError(t, err)
	agg := NewAggregator(catalog)

	rec := agg.AggregateAuto("EMP001", testDate, []punch.Event{punchAt(9, 30)}, nil)

	assert.Equal(t, domain.StatusPresent, rec.Status)
	require.NotNil(t, rec.MatchedShift)
	assert.Equal(t, "SHORT", *rec.MatchedShift)
	require.NotNil(t, rec.FirstPunch)
	assert.Equal(t, tod(9, 30), *rec.FirstPunch)
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(9, 30), *rec.LastPunch)
	require.NotNil(t, rec.TotalTime)
	assert.Equal(t, time.Duration(0), *rec.TotalTime)
	assert.Nil(t, rec.Overtime)
}

func TestAggregateAutoRawLastFallbackWhenNoEndWindowMatch(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	// 08:50 opens the DAY shift; 23:00 fits no window but is still the
	// day's last punch, which the next day's carry-over will read.
	punches := []punch.Event{punchAt(8, 50), punchAt(23, 0)}
	rec := agg.AggregateAuto("EMP001", testDate, punches, nil)

	assert.Equal(t, domain.StatusPresent, rec.Status)
	require.NotNil(t, rec.MatchedShift)
	assert.Equal(t, "DAY", *rec.MatchedShift)
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(23, 0), *rec.LastPunch)
	assert.Nil(t, rec.TotalTime)
	assert.Nil(t, rec.Overtime)
}

func TestAggregateAutoUnorderedInputIsSorted(t *testing.T) {
	agg := NewAggregator(autoCatalog(t))

	punches := []punch.Event{punchAt(17, 10), punchAt(8, 50)}
	rec := agg.AggregateAuto("EMP001", testDate, punches, nil)

	require.NotNil(t, rec.FirstPunch)
	assert.Equal(t, tod(8, 50), *rec.FirstPunch)
	require.NotNil(t, rec.LastPunch)
	assert.Equal(t, tod(17, 10), *rec.LastPunch)
}

func durPtr(d time.Duration) *time.Duration {
	return &d
}

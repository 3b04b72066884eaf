package attendance

import (
	"fmt"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
)

// Resolution is the outcome of shift resolution for one employee-day. Fixed
// is non-nil when a fixed assignment governs the day; otherwise the day goes
// through auto-detection against the catalog.
type Resolution struct {
	Fixed *shift.FixedShift
}

// Resolver decides which shift model governs an employee-day. A fixed
// assignment always wins; auto-detection is never attempted for an employee
// that has one, even when the punches do not fit it.
type Resolver struct {
	catalog *shift.Catalog
}

func NewResolver(catalog *shift.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the fixed shift referenced by the employee, or an auto
// resolution when no reference is set. A reference to a shift name that is
// not in the catalog fails the unit, not the batch.
func (r *Resolver) Resolve(emp employee.Employee) (Resolution, error) {
	if !emp.HasFixedShift() {
		return Resolution{}, nil
	}

	fs, ok := r.catalog.FixedByName(*emp.ShiftName)
	if !ok {
		return Resolution{}, fmt.Errorf("employee %s: %w: %q", emp.ID, shift.ErrShiftNotFound, *emp.ShiftName)
	}

	return Resolution{Fixed: &fs}, nil
}

// eligiblePunches applies carry-over suppression to a day's punches. When the
// previous day's record carries a last punch, early punches with a smaller
// time-of-day are the tail of that overnight shift and are dropped. The
// suppression ends for the rest of the day at the first punch whose time is
// at or past the carried-over value.
//
// Punches must already be ordered ascending by time-of-day.
func eligiblePunches(punches []punch.Event, prevLast *timeutil.TimeOfDay) []punch.Event {
	if prevLast == nil {
		return punches
	}

	for i, p := range punches {
		if p.Time >= *prevLast {
			return punches[i:]
		}
	}
	return nil
}

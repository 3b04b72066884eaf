package shift

import (
	"fmt"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
)

// FixedShift is a shift definition assigned to an employee directly. One
// grace period covers both late entry and early exit, and one threshold
// covers overtime on either side of the shift.
type FixedShift struct {
	ID                int64
	Name              string
	StartTime         timeutil.TimeOfDay
	EndTime           timeutil.TimeOfDay
	GracePeriod       time.Duration
	OvertimeThreshold time.Duration
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AutoShift is a candidate definition matched against punch timing for
// employees without a fixed assignment. The four grace durations are
// independent.
type AutoShift struct {
	ID                   int64
	Name                 string
	StartTime            timeutil.TimeOfDay
	EndTime              timeutil.TimeOfDay
	GraceBeforeStartTime time.Duration
	GraceAfterStartTime  time.Duration
	GraceBeforeEndTime   time.Duration
	GraceAfterEndTime    time.Duration
	OvertimeThreshold    time.Duration
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Duration is the nominal shift length.
func (s AutoShift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// InStartWindow reports whether t falls inside
// [start − grace_before_start, start + grace_after_start]. Window bounds are
// clamped to the day so a shift starting near midnight cannot produce an
// inverted window.
func (s AutoShift) InStartWindow(t timeutil.TimeOfDay) bool {
	lo := s.StartTime.Add(-s.GraceBeforeStartTime).ClampToDay()
	hi := s.StartTime.Add(s.GraceAfterStartTime).ClampToDay()
	return lo <= t && t <= hi
}

// InEndWindow reports whether t falls inside
// [end − grace_before_end, end + grace_after_end], clamped to the day.
func (s AutoShift) InEndWindow(t timeutil.TimeOfDay) bool {
	lo := s.EndTime.Add(-s.GraceBeforeEndTime).ClampToDay()
	hi := s.EndTime.Add(s.GraceAfterEndTime).ClampToDay()
	return lo <= t && t <= hi
}

func (s FixedShift) validate() error {
	if s.Name == "" {
		return fmt.Errorf("fixed shift: %w: name is empty", ErrMisconfigured)
	}
	if !s.StartTime.Valid() || !s.EndTime.Valid() {
		return fmt.Errorf("fixed shift %q: %w: start/end outside the day", s.Name, ErrMisconfigured)
	}
	if s.StartTime >= s.EndTime {
		return fmt.Errorf("fixed shift %q: %w: start %s is not before end %s",
			s.Name, ErrMisconfigured, s.StartTime, s.EndTime)
	}
	if s.GracePeriod < 0 || s.OvertimeThreshold < 0 {
		return fmt.Errorf("fixed shift %q: %w: negative grace or threshold", s.Name, ErrMisconfigured)
	}
	return nil
}

func (s AutoShift) validate() error {
	if s.Name == "" {
		return fmt.Errorf("auto shift: %w: name is empty", ErrMisconfigured)
	}
	if !s.StartTime.Valid() || !s.EndTime.Valid() {
		return fmt.Errorf("auto shift %q: %w: start/end outside the day", s.Name, ErrMisconfigured)
	}
	if s.StartTime >= s.EndTime {
		return fmt.Errorf("auto shift %q: %w: start %s is not before end %s",
			s.Name, ErrMisconfigured, s.StartTime, s.EndTime)
	}
	if s.GraceBeforeStartTime < 0 || s.GraceAfterStartTime < 0 ||
		s.GraceBeforeEndTime < 0 || s.GraceAfterEndTime < 0 ||
		s.OvertimeThreshold < 0 {
		return fmt.Errorf("auto shift %q: %w: negative grace or threshold", s.Name, ErrMisconfigured)
	}
	return nil
}

// Catalog is an immutable snapshot of all shift definitions, loaded once per
// batch run. Auto holds catalog order: when several auto-shift windows
// overlap for the same punch, the first definition wins.
type Catalog struct {
	Fixed map[string]FixedShift
	Auto  []AutoShift
}

// NewCatalog validates every definition. A misconfigured catalog is fatal
// for the batch; it must never leak into per-employee results.
func NewCatalog(fixed []FixedShift, auto []AutoShift) (*Catalog, error) {
	c := &Catalog{Fixed: make(map[string]FixedShift, len(fixed)), Auto: auto}
	for _, fs := range fixed {
		if err := fs.validate(); err != nil {
			return nil, err
		}
		c.Fixed[fs.Name] = fs
	}
	for _, as := range auto {
		if err := as.validate(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FixedByName looks up a fixed shift by its name reference.
func (c *Catalog) FixedByName(name string) (FixedShift, bool) {
	fs, ok := c.Fixed[name]
	return fs, ok
}

package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/biotrack-hr/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

// UnitFailure identifies one employee-day that could not be processed.
type UnitFailure struct {
	EmployeeID string
	Date       time.Time
	Err        error
}

// RunReport summarises one batch run. Processed counts employee-days with
// punches, Skipped counts zero-punch days (an Absent record is still
// written), Failed counts units whose read/compute/write did not commit.
type RunReport struct {
	Processed int
	Skipped   int
	Failed    int
	Failures  []UnitFailure
}

// Invalidator is notified after a run commits new records, so read caches
// over the attendance store can drop stale listings.
type Invalidator interface {
	Invalidate()
}

// OrchestratorConfig tunes one batch run.
type OrchestratorConfig struct {
	// Workers bounds the per-date fan-out over employees.
	Workers int
	// UnitTimeout caps one employee-day unit; a stuck unit fails alone
	// instead of stalling the date.
	UnitTimeout time.Duration
}

// Orchestrator drives the batch: for each date in the range, oldest first,
// it computes and upserts one attendance record per employee. Dates run
// sequentially because auto-detection reads the previous day's committed
// record; employees within a date run concurrently.
type Orchestrator struct {
	employeeRepo   employee.Repository
	punchRepo      punch.Repository
	shiftRepo      shift.Repository
	attendanceRepo attendance.Repository
	invalidator    Invalidator
	cfg            OrchestratorConfig
	logger         *slog.Logger

	// transact wraps one employee-day unit in a transaction.
	transact func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewOrchestrator(
	db *database.DB,
	employeeRepo employee.Repository,
	punchRepo punch.Repository,
	shiftRepo shift.Repository,
	attendanceRepo attendance.Repository,
	invalidator Invalidator,
	cfg OrchestratorConfig,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.UnitTimeout <= 0 {
		cfg.UnitTimeout = 10 * time.Second
	}
	return &Orchestrator{
		employeeRepo:   employeeRepo,
		punchRepo:      punchRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		invalidator:    invalidator,
		cfg:            cfg,
		logger:         logger,
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Run processes the daysBack most recent dates ending at today, oldest
// first. Catalog or roster load failures abort the whole run; per-unit
// failures are collected into the report and never abort committed work.
func (o *Orchestrator) Run(ctx context.Context, today time.Time, daysBack int) (RunReport, error) {
	var report RunReport

	catalog, err := o.loadCatalog(ctx)
	if err != nil {
		return report, err
	}

	employees, err := o.employeeRepo.ListAll(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to load employee roster: %w", err)
	}

	resolver := NewResolver(catalog)
	aggregator := NewAggregator(catalog)

	today = truncateToDate(today)
	o.logger.Info("attendance batch started",
		slog.Int("days_back", daysBack),
		slog.Int("employees", len(employees)),
		slog.Int("workers", o.cfg.Workers),
	)

	var mu sync.Mutex
	for offset := daysBack - 1; offset >= 0; offset-- {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		date := today.AddDate(0, 0, -offset)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.cfg.Workers)
		for _, emp := range employees {
			emp := emp
			g.Go(func() error {
				skipped, err := o.processUnit(gctx, resolver, aggregator, emp, date)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					report.Failed++
					report.Failures = append(report.Failures, UnitFailure{
						EmployeeID: emp.ID,
						Date:       date,
						Err:        err,
					})
					o.logger.Error("attendance unit failed",
						slog.String("employee_id", emp.ID),
						slog.String("date", date.Format("2006-01-02")),
						slog.Any("error", err),
					)
				case skipped:
					report.Skipped++
				default:
					report.Processed++
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return report, err
		}

		o.logger.Info("attendance date done", slog.String("date", date.Format("2006-01-02")))
	}

	if o.invalidator != nil {
		o.invalidator.Invalidate()
	}

	o.logger.Info("attendance batch finished",
		slog.Int("processed", report.Processed),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// processUnit computes and upserts one employee-day inside its own bounded
// transaction. Returns skipped=true when the employee has no punches that
// day.
func (o *Orchestrator) processUnit(ctx context.Context, resolver *Resolver, aggregator *Aggregator, emp employee.Employee, date time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.UnitTimeout)
	defer cancel()

	res, err := resolver.Resolve(emp)
	if err != nil {
		return false, err
	}

	var skipped bool
	err = o.transact(ctx, func(txCtx context.Context) error {
		var rec attendance.Record

		if res.Fixed != nil {
			bounds, err := o.punchRepo.DayBounds(txCtx, emp.ID, date)
			if err != nil {
				return err
			}
			if bounds == nil {
				skipped = true
				rec = aggregator.AggregateAbsent(emp.ID, date)
			} else {
				rec = aggregator.AggregateFixed(emp.ID, date, *bounds, *res.Fixed)
			}
		} else {
			punches, err := o.punchRepo.ListForDay(txCtx, emp.ID, date)
			if err != nil {
				return err
			}
			if len(punches) == 0 {
				skipped = true
				rec = aggregator.AggregateAbsent(emp.ID, date)
			} else {
				prevLast, err := o.previousDayLastPunch(txCtx, emp.ID, date)
				if err != nil {
					return err
				}
				rec = aggregator.AggregateAuto(emp.ID, date, punches, prevLast)
			}
		}

		return o.attendanceRepo.Upsert(txCtx, rec)
	})
	if err != nil {
		return false, err
	}

	return skipped, nil
}

func (o *Orchestrator) previousDayLastPunch(ctx context.Context, employeeID string, date time.Time) (*timeutil.TimeOfDay, error) {
	prev, err := o.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, nil
	}
	return prev.LastPunch, nil
}

func (o *Orchestrator) loadCatalog(ctx context.Context) (*shift.Catalog, error) {
	fixed, err := o.shiftRepo.ListFixed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed shifts: %w", err)
	}
	auto, err := o.shiftRepo.ListAuto(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load auto shifts: %w", err)
	}
	return shift.NewCatalog(fixed, auto)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

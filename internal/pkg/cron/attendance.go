package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/service/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/service/etl"
)

// AttendanceJobs ties the terminal import and the attendance batch to the
// scheduler. The import runs first inside the same job so freshly copied
// punches are computed in the same pass, mirroring the terminal vendor's
// sync-then-process flow.
type AttendanceJobs struct {
	importer     *etl.Importer
	orchestrator *attendance.Orchestrator
	daysBack     int
	interval     time.Duration
	timezone     *time.Location
}

func NewAttendanceJobs(
	importer *etl.Importer,
	orchestrator *attendance.Orchestrator,
	daysBack int,
	interval time.Duration,
	timezone *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		importer:     importer,
		orchestrator: orchestrator,
		daysBack:     daysBack,
		interval:     interval,
		timezone:     timezone,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_and_compute_attendance", j.interval, j.SyncAndCompute)
}

// SyncAndCompute imports new terminal punches, then recomputes the
// configured day window. An import failure skips the compute step so the
// batch never runs over a known-stale event store.
func (j *AttendanceJobs) SyncAndCompute(ctx context.Context) error {
	today := time.Now().In(j.timezone)
	since := today.AddDate(0, 0, -j.daysBack)

	if j.importer != nil {
		if _, err := j.importer.Run(ctx, since); err != nil {
			return fmt.Errorf("terminal sync failed: %w", err)
		}
	}

	report, err := j.orchestrator.Run(ctx, today, j.daysBack)
	if err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("attendance batch finished with %d failed units", report.Failed)
	}

	return nil
}

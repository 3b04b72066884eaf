package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/config"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/biotrack-hr/attendance-backend-go/internal/service/attendance"
)

// One-shot attendance computation over the recent day window. Meant for
// system cron or manual reruns; the API binary runs the same batch on its
// internal scheduler.
func main() {
	var days int
	flag.IntVar(&days, "days", 0, "days back to (re)process, 0 uses BATCH_DAYS_BACK")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if days < 1 {
		days = cfg.Batch.DaysBack
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Batch.Workers)+2)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	orchestrator := attendanceService.NewOrchestrator(
		db,
		employeeRepo,
		punchRepo,
		shiftRepo,
		attendanceRepo,
		nil,
		attendanceService.OrchestratorConfig{
			Workers:     cfg.Batch.Workers,
			UnitTimeout: cfg.Batch.UnitTimeout,
		},
		slog.Default(),
	)

	report, err := orchestrator.Run(context.Background(), time.Now().In(cfg.Location()), days)
	if err != nil {
		log.Fatal("Batch aborted: ", err)
	}

	if report.Failed > 0 {
		for _, f := range report.Failures {
			slog.Error("unit failed",
				slog.String("employee_id", f.EmployeeID),
				slog.String("date", f.Date.Format("2006-01-02")),
				slog.Any("error", f.Err),
			)
		}
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/biotrack-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/biotrack-hr/attendance-backend-go/internal/handler/http"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/biotrack-hr/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/biotrack-hr/attendance-backend-go/internal/service/employee"
	"github.com/biotrack-hr/attendance-backend-go/internal/service/etl"
	reportService "github.com/biotrack-hr/attendance-backend-go/internal/service/report"
	shiftService "github.com/biotrack-hr/attendance-backend-go/internal/service/shift"
	"github.com/go-chi/jwtauth/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// Pool size covers the worker fan-out plus API traffic.
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Batch.Workers)+8)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	attendanceSvc := attendanceService.NewService(attendanceRepo, cfg.Batch.CacheTTL)
	employeeSvc := employeeService.NewService(employeeRepo, shiftRepo)
	shiftSvc := shiftService.NewService(shiftRepo)
	reportSvc := reportService.NewService(attendanceRepo)

	orchestrator := attendanceService.NewOrchestrator(
		db,
		employeeRepo,
		punchRepo,
		shiftRepo,
		attendanceRepo,
		attendanceSvc,
		attendanceService.OrchestratorConfig{
			Workers:     cfg.Batch.Workers,
			UnitTimeout: cfg.Batch.UnitTimeout,
		},
		slog.Default(),
	)

	// The terminal importer is optional: without credentials the scheduler
	// recomputes from whatever the event store already holds.
	var importer *etl.Importer
	if cfg.Terminal.Password != "" {
		importer, err = etl.NewImporter(cfg.TerminalURL(), cfg.Terminal.Table, punchRepo, slog.Default())
		if err != nil {
			log.Fatal("Error opening terminal database: ", err)
		}
		defer importer.Close()
	}

	scheduler := cron.NewScheduler()
	jobs := cron.NewAttendanceJobs(importer, orchestrator, cfg.Batch.DaysBack, cfg.Batch.Interval, cfg.Location())
	jobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTAuth:           jwtauth.New("HS256", []byte(cfg.API.JWTSecret), nil),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc, orchestrator, cfg.Batch.DaysBack, cfg.Location()),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		ShiftHandler:      appHTTP.NewShiftHandler(shiftSvc),
		PunchHandler:      appHTTP.NewPunchHandler(punchRepo),
		DashboardHandler:  appHTTP.NewDashboardHandler(attendanceSvc),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("API server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

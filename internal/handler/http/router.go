package http

import (
	"log/slog"
	"os"

	"github.com/biotrack-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTAuth           *jwtauth.JWTAuth
	AttendanceHandler AttendanceHandler
	EmployeeHandler   EmployeeHandler
	ShiftHandler      ShiftHandler
	PunchHandler      PunchHandler
	DashboardHandler  DashboardHandler
	ReportHandler     ReportHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", deps.AttendanceHandler.ListRecords)
			r.Get("/export", deps.ReportHandler.ExportAttendance)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTAuth))
				r.Use(middleware.AuthRequired(deps.JWTAuth))
				r.Post("/recompute", deps.AttendanceHandler.Recompute)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", deps.EmployeeHandler.ListEmployees)
			r.Get("/{id}", deps.EmployeeHandler.GetEmployee)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTAuth))
				r.Use(middleware.AuthRequired(deps.JWTAuth))
				r.Post("/", deps.EmployeeHandler.CreateEmployee)
				r.Put("/{id}", deps.EmployeeHandler.UpdateEmployee)
				r.Delete("/{id}", deps.EmployeeHandler.DeleteEmployee)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/fixed", deps.ShiftHandler.ListFixedShifts)
			r.Get("/auto", deps.ShiftHandler.ListAutoShifts)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTAuth))
				r.Use(middleware.AuthRequired(deps.JWTAuth))
				r.Post("/fixed", deps.ShiftHandler.CreateFixedShift)
				r.Post("/auto", deps.ShiftHandler.CreateAutoShift)
			})
		})

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", deps.PunchHandler.ListEvents)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/snapshot", deps.DashboardHandler.Snapshot)
			r.Get("/metrics", deps.DashboardHandler.MonthlyMetrics)
		})
	})

	return r
}

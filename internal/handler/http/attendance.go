package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/handler/http/response"
	attendanceservice "github.com/biotrack-hr/attendance-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	service      attendanceservice.Service
	orchestrator *attendanceservice.Orchestrator
	daysBack     int
	timezone     *time.Location
}

func NewAttendanceHandler(service attendanceservice.Service, orchestrator *attendanceservice.Orchestrator, daysBack int, timezone *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{
		service:      service,
		orchestrator: orchestrator,
		daysBack:     daysBack,
		timezone:     timezone,
	}
}

// ListRecords implements AttendanceHandler
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAttendanceFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	records, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	response.SuccessWithMeta(w, responses, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	})
}

// Recompute implements AttendanceHandler - manual batch trigger
func (h *attendanceHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	daysBack := h.daysBack
	if d := r.URL.Query().Get("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "days must be a positive integer", nil)
			return
		}
		daysBack = parsed
	}

	report, err := h.orchestrator.Run(r.Context(), time.Now().In(h.timezone), daysBack)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recompute finished", map[string]interface{}{
		"processed": report.Processed,
		"skipped":   report.Skipped,
		"failed":    report.Failed,
	})
}

func parseAttendanceFilter(r *http.Request) (attendance.Filter, error) {
	q := r.URL.Query()
	filter := attendance.Filter{
		Page:  parseIntDefault(q.Get("page"), 1),
		Limit: parseIntDefault(q.Get("limit"), 20),
	}

	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("employee_name"); v != "" {
		filter.EmployeeName = &v
	}
	if v := q.Get("status"); v != "" {
		status := attendance.Status(v)
		filter.Status = &status
	}

	var err error
	if filter.Date, err = parseDateParam(q.Get("date")); err != nil {
		return filter, err
	}
	if filter.StartDate, err = parseDateParam(q.Get("start_date")); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDateParam(q.Get("end_date")); err != nil {
		return filter, err
	}

	filter.LateEntryNotNull = q.Get("late_entry") == "true"
	filter.EarlyExitNotNull = q.Get("early_exit") == "true"
	filter.OvertimeNotNull = q.Get("overtime") == "true"

	return filter, nil
}

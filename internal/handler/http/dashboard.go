package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/handler/http/response"
	attendanceservice "github.com/biotrack-hr/attendance-backend-go/internal/service/attendance"
)

type DashboardHandler interface {
	Snapshot(w http.ResponseWriter, r *http.Request)
	MonthlyMetrics(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	service attendanceservice.Service
}

func NewDashboardHandler(service attendanceservice.Service) DashboardHandler {
	return &dashboardHandlerImpl{service: service}
}

// Snapshot implements DashboardHandler - counters for the latest processed date
func (h *dashboardHandlerImpl) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.SnapshotResponse{
		Date:          snap.Date.Format("2006-01-02"),
		PresentCount:  snap.PresentCount,
		AbsentCount:   snap.AbsentCount,
		LateCount:     snap.LateCount,
		EarlyCount:    snap.EarlyCount,
		OvertimeCount: snap.OvertimeCount,
		CheckinCount:  snap.CheckinCount,
		CheckoutCount: snap.CheckoutCount,
	})
}

// MonthlyMetrics implements DashboardHandler - per-day counters for one month
func (h *dashboardHandlerImpl) MonthlyMetrics(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2000 || parsed > 2200 {
			response.BadRequest(w, "invalid year", nil)
			return
		}
		year = parsed
	}
	if v := q.Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "invalid month", nil)
			return
		}
		month = time.Month(parsed)
	}

	metrics, err := h.service.MonthlyMetrics(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.DayMetricsResponse, 0, len(metrics))
	for _, m := range metrics {
		responses = append(responses, attendance.DayMetricsResponse{
			Date:      m.Date.Format("2006-01-02"),
			Present:   m.Present,
			Absent:    m.Absent,
			LateEntry: m.LateEntry,
			EarlyExit: m.EarlyExit,
			Overtime:  m.Overtime,
		})
	}

	response.Success(w, responses)
}

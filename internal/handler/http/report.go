package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/handler/http/response"
	reportservice "github.com/biotrack-hr/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	service reportservice.Service
}

func NewReportHandler(service reportservice.Service) ReportHandler {
	return &reportHandlerImpl{service: service}
}

// ExportAttendance implements ReportHandler - spreadsheet download
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAttendanceFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	workbook, err := h.service.ExportAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

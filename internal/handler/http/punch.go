package http

import (
	"math"
	"net/http"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	repo punch.Repository
}

// NewPunchHandler serves the raw event log. Events are read-only at the API
// boundary; only the importer writes them.
func NewPunchHandler(repo punch.Repository) PunchHandler {
	return &punchHandlerImpl{repo: repo}
}

// ListEvents implements PunchHandler
func (h *punchHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := punch.Filter{
		Page:  parseIntDefault(q.Get("page"), 1),
		Limit: parseIntDefault(q.Get("limit"), 20),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	var err error
	if filter.Date, err = parseDateParam(q.Get("date")); err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	if filter.StartDate, err = parseDateParam(q.Get("start_date")); err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	if filter.EndDate, err = parseDateParam(q.Get("end_date")); err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	events, total, err := h.repo.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]punch.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, punch.ToResponse(e))
	}

	response.SuccessWithMeta(w, responses, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	})
}

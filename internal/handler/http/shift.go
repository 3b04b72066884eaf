package http

import (
	"net/http"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/handler/http/response"
	shiftservice "github.com/biotrack-hr/attendance-backend-go/internal/service/shift"
)

type ShiftHandler interface {
	ListFixedShifts(w http.ResponseWriter, r *http.Request)
	ListAutoShifts(w http.ResponseWriter, r *http.Request)
	CreateFixedShift(w http.ResponseWriter, r *http.Request)
	CreateAutoShift(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	service shiftservice.Service
}

func NewShiftHandler(service shiftservice.Service) ShiftHandler {
	return &shiftHandlerImpl{service: service}
}

// ListFixedShifts implements ShiftHandler
func (h *shiftHandlerImpl) ListFixedShifts(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ListFixed(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// ListAutoShifts implements ShiftHandler
func (h *shiftHandlerImpl) ListAutoShifts(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ListAuto(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// CreateFixedShift implements ShiftHandler
func (h *shiftHandlerImpl) CreateFixedShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateFixedShiftRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateFixed(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fixed shift created", result)
}

// CreateAutoShift implements ShiftHandler
func (h *shiftHandlerImpl) CreateAutoShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateAutoShiftRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateAuto(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Auto shift created", result)
}

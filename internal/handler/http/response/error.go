package response

import (
	"errors"
	"net/http"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEnrollIDExists):
		Conflict(w, "Device enroll ID already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrMisconfigured):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoLatestDate):
		NotFound(w, "No attendance records processed yet")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

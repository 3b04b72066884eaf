package employee

import (
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ID             string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email,omitempty"`
	DeviceEnrollID string  `json:"device_enroll_id"`
	ShiftName      *string `json:"shift_name,omitempty"`
	JobStatus      string  `json:"job_status"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if validator.IsEmpty(r.DeviceEnrollID) {
		errs = append(errs, validator.ValidationError{Field: "device_enroll_id", Message: "device_enroll_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	ShiftName *string `json:"shift_name,omitempty"`
	JobStatus *string `json:"job_status,omitempty"`
}

type EmployeeResponse struct {
	ID             string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email,omitempty"`
	DeviceEnrollID string  `json:"device_enroll_id"`
	ShiftName      *string `json:"shift_name,omitempty"`
	JobStatus      string  `json:"job_status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FullName:       e.FullName,
		Email:          e.Email,
		DeviceEnrollID: e.DeviceEnrollID,
		ShiftName:      e.ShiftName,
		JobStatus:      e.JobStatus,
	}
}

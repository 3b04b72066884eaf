package shift

import (
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateFixedShiftRequest struct {
	Name              string `json:"name"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	GracePeriod       string `json:"grace_period"`
	OvertimeThreshold string `json:"overtime_threshold"`
}

func (r CreateFixedShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if !validator.IsValidDuration(r.GracePeriod) {
		errs = append(errs, validator.ValidationError{Field: "grace_period", Message: "must be a non-negative duration, e.g. 15m"})
	}
	if !validator.IsValidDuration(r.OvertimeThreshold) {
		errs = append(errs, validator.ValidationError{Field: "overtime_threshold", Message: "must be a non-negative duration, e.g. 30m"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the request after Validate has passed.
func (r CreateFixedShiftRequest) ToEntity() FixedShift {
	start, _ := timeutil.Parse(r.StartTime)
	end, _ := timeutil.Parse(r.EndTime)
	grace, _ := time.ParseDuration(r.GracePeriod)
	threshold, _ := time.ParseDuration(r.OvertimeThreshold)
	return FixedShift{
		Name:              r.Name,
		StartTime:         start,
		EndTime:           end,
		GracePeriod:       grace,
		OvertimeThreshold: threshold,
	}
}

type CreateAutoShiftRequest struct {
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	GraceBeforeStartTime string `json:"grace_before_start_time"`
	GraceAfterStartTime  string `json:"grace_after_start_time"`
	GraceBeforeEndTime   string `json:"grace_before_end_time"`
	GraceAfterEndTime    string `json:"grace_after_end_time"`
	OvertimeThreshold    string `json:"overtime_threshold"`
}

func (r CreateAutoShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	for field, value := range map[string]string{
		"grace_before_start_time": r.GraceBeforeStartTime,
		"grace_after_start_time":  r.GraceAfterStartTime,
		"grace_before_end_time":   r.GraceBeforeEndTime,
		"grace_after_end_time":    r.GraceAfterEndTime,
		"overtime_threshold":      r.OvertimeThreshold,
	} {
		if !validator.IsValidDuration(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a non-negative duration, e.g. 15m"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the request after Validate has passed.
func (r CreateAutoShiftRequest) ToEntity() AutoShift {
	start, _ := timeutil.Parse(r.StartTime)
	end, _ := timeutil.Parse(r.EndTime)
	gbs, _ := time.ParseDuration(r.GraceBeforeStartTime)
	gas, _ := time.ParseDuration(r.GraceAfterStartTime)
	gbe, _ := time.ParseDuration(r.GraceBeforeEndTime)
	gae, _ := time.ParseDuration(r.GraceAfterEndTime)
	threshold, _ := time.ParseDuration(r.OvertimeThreshold)
	return AutoShift{
		Name:                 r.Name,
		StartTime:            start,
		EndTime:              end,
		GraceBeforeStartTime: gbs,
		GraceAfterStartTime:  gas,
		GraceBeforeEndTime:   gbe,
		GraceAfterEndTime:    gae,
		OvertimeThreshold:    threshold,
	}
}

type ShiftResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	GracePeriod          string `json:"grace_period,omitempty"`
	GraceBeforeStartTime string `json:"grace_before_start_time,omitempty"`
	GraceAfterStartTime  string `json:"grace_after_start_time,omitempty"`
	GraceBeforeEndTime   string `json:"grace_before_end_time,omitempty"`
	GraceAfterEndTime    string `json:"grace_after_end_time,omitempty"`
	OvertimeThreshold    string `json:"overtime_threshold"`
}

func FixedToResponse(fs FixedShift) ShiftResponse {
	return ShiftResponse{
		ID:                fs.ID,
		Name:              fs.Name,
		StartTime:         fs.StartTime.String(),
		EndTime:           fs.EndTime.String(),
		GracePeriod:       fs.GracePeriod.String(),
		OvertimeThreshold: fs.OvertimeThreshold.String(),
	}
}

func AutoToResponse(as AutoShift) ShiftResponse {
	return ShiftResponse{
		ID:                   as.ID,
		Name:                 as.Name,
		StartTime:            as.StartTime.String(),
		EndTime:              as.EndTime.String(),
		GraceBeforeStartTime: as.GraceBeforeStartTime.String(),
		GraceAfterStartTime:  as.GraceAfterStartTime.String(),
		GraceBeforeEndTime:   as.GraceBeforeEndTime.String(),
		GraceAfterEndTime:    as.GraceAfterEndTime.String(),
		OvertimeThreshold:    as.OvertimeThreshold.String(),
	}
}

package attendance

import (
	"fmt"
	"time"
)

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	FirstPunch   *string `json:"first_punch,omitempty"`
	LastPunch    *string `json:"last_punch,omitempty"`
	Direction    *string `json:"direction,omitempty"`
	Terminal     *string `json:"terminal,omitempty"`
	MatchedShift *string `json:"shift,omitempty"`
	Status       string  `json:"status"`
	TotalTime    *string `json:"total_time,omitempty"`
	LateEntry    *string `json:"late_entry,omitempty"`
	EarlyExit    *string `json:"early_exit,omitempty"`
	Overtime     *string `json:"overtime,omitempty"`
}

func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date.Format("2006-01-02"),
		Direction:    r.Direction,
		Terminal:     r.Terminal,
		MatchedShift: r.MatchedShift,
		Status:       string(r.Status),
	}
	if r.FirstPunch != nil {
		s := r.FirstPunch.String()
		resp.FirstPunch = &s
	}
	if r.LastPunch != nil {
		s := r.LastPunch.String()
		resp.LastPunch = &s
	}
	resp.TotalTime = durationString(r.TotalTime)
	resp.LateEntry = durationString(r.LateEntry)
	resp.EarlyExit = durationString(r.EarlyExit)
	resp.Overtime = durationString(r.Overtime)
	return resp
}

func durationString(d *time.Duration) *string {
	if d == nil {
		return nil
	}
	total := int64(d.Seconds())
	s := fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	return &s
}

type SnapshotResponse struct {
	Date          string `json:"date"`
	PresentCount  int64  `json:"present_count"`
	AbsentCount   int64  `json:"absent_count"`
	LateCount     int64  `json:"late_entry_count"`
	EarlyCount    int64  `json:"early_exit_count"`
	OvertimeCount int64  `json:"overtime_count"`
	CheckinCount  int64  `json:"total_checkin"`
	CheckoutCount int64  `json:"total_checkout"`
}

type DayMetricsResponse struct {
	Date      string `json:"date"`
	Present   int64  `json:"present"`
	Absent    int64  `json:"absent"`
	LateEntry int64  `json:"late_entry"`
	EarlyExit int64  `json:"early_exit"`
	Overtime  int64  `json:"overtime"`
}

package punch

type EventResponse struct {
	ID           string `json:"id"`
	SourceID     int64  `json:"source_id"`
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"log_date"`
	Time         string `json:"log_time"`
	Direction    string `json:"direction,omitempty"`
	Terminal     string `json:"terminal,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

func ToResponse(e Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		SourceID:     e.SourceID,
		EmployeeID:   e.EmployeeID,
		Date:         e.Date.Format("2006-01-02"),
		Time:         e.Time.String(),
		Direction:    e.Direction,
		Terminal:     e.Terminal,
		SerialNumber: e.SerialNumber,
	}
}

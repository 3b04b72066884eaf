package report

import (
	"context"
	"fmt"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// Service renders attendance listings into a spreadsheet for download.
type Service interface {
	// ExportAttendance writes one sheet of records matching the filter and
	// returns the serialized workbook.
	ExportAttendance(ctx context.Context, filter attendance.Filter) ([]byte, error)
}

type service struct {
	repo attendance.Repository
}

func NewService(repo attendance.Repository) Service {
	return &service{repo: repo}
}

var exportHeaders = []string{
	"Employee ID", "Employee Name", "Date", "Status", "Shift",
	"First Punch", "Last Punch", "Total Time", "Late Entry", "Early Exit", "Overtime",
}

func (s *service) ExportAttendance(ctx context.Context, filter attendance.Filter) ([]byte, error) {
	records, err := s.repo.ListForExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Attendance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	presentStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#1E7B1E"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create status style: %w", err)
	}
	absentStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create status style: %w", err)
	}

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, rec := range records {
		resp := attendance.ToResponse(rec)
		values := []interface{}{
			resp.EmployeeID,
			strOrDash(resp.EmployeeName),
			resp.Date,
			statusLabel(rec.Status),
			strOrDash(resp.MatchedShift),
			strOrDash(resp.FirstPunch),
			strOrDash(resp.LastPunch),
			strOrDash(resp.TotalTime),
			strOrDash(resp.LateEntry),
			strOrDash(resp.EarlyExit),
			strOrDash(resp.Overtime),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, v)
		}

		statusCell, err := excelize.CoordinatesToCellName(4, rowIdx+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address status cell: %w", err)
		}
		if rec.Status == attendance.StatusPresent {
			f.SetCellStyle(sheetName, statusCell, statusCell, presentStyle)
		} else {
			f.SetCellStyle(sheetName, statusCell, statusCell, absentStyle)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 20)
	f.SetColWidth(sheetName, "C", "K", 13)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func statusLabel(s attendance.Status) string {
	switch s {
	case attendance.StatusPresent:
		return "Present"
	case attendance.StatusAbsent:
		return "Absent"
	default:
		return string(s)
	}
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type exportRepo struct {
	attendance.Repository
	records []attendance.Record
}

func (r *exportRepo) ListForExport(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	return r.records, nil
}

func TestExportAttendanceRendersWorkbook(t *testing.T) {
	first := timeutil.FromClock(9, 10, 0)
	last := timeutil.FromClock(17, 5, 0)
	total := last.Sub(first)
	name := "Jane Roe"
	shiftName := "GENERAL"

	repo := &exportRepo{records: []attendance.Record{
		{
			EmployeeID:   "EMP001",
			EmployeeName: &name,
			Date:         time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			FirstPunch:   &first,
			LastPunch:    &last,
			MatchedShift: &shiftName,
			Status:       attendance.StatusPresent,
			TotalTime:    &total,
		},
		{
			EmployeeID: "EMP002",
			Date:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusAbsent,
		},
	}}
	svc := NewService(repo)

	workbook, err := svc.ExportAttendance(context.Background(), attendance.Filter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	const sheetName = "Attendance"
	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	for i, want := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	row2 := map[string]string{
		"A2": "EMP001",
		"B2": "Jane Roe",
		"C2": "2026-08-15",
		"D2": "Present",
		"E2": "GENERAL",
		"F2": "09:10:00",
		"G2": "17:05:00",
		"H2": "07:55:00",
		"I2": "-",
		"J2": "-",
		"K2": "-",
	}
	for cell, want := range row2 {
		got, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}

	// Absent row: only id, name dash, date, and status carry values.
	gotStatus, err := f.GetCellValue(sheetName, "D3")
	require.NoError(t, err)
	assert.Equal(t, "Absent", gotStatus)
	gotFirst, err := f.GetCellValue(sheetName, "F3")
	require.NoError(t, err)
	assert.Equal(t, "-", gotFirst)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Present", statusLabel(attendance.StatusPresent))
	assert.Equal(t, "Absent", statusLabel(attendance.StatusAbsent))
}

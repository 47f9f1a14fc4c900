package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

// Export implements report.ReportService. One row per employee, one column
// per calendar date; presence cells carry the day's summed hours at two
// decimals.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.BuildRequest) (*bytes.Buffer, string, error) {
	result, err := s.Build(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), exportSheet)

	// Collect date columns in range order and employees in row order.
	var dates []string
	dateCol := make(map[string]int)
	for day := req.From; !day.After(req.To); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		dateCol[key] = len(dates)
		dates = append(dates, key)
	}

	headers := append([]string{"Badge Code", "Name", "Department"}, dates...)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	employeeRow := make(map[string]int)
	nextRow := 2
	for _, row := range result.Rows {
		rowNum, ok := employeeRow[row.EmployeeID]
		if !ok {
			rowNum = nextRow
			nextRow++
			employeeRow[row.EmployeeID] = rowNum

			for i, v := range []string{row.BadgeCode, row.EmployeeName, row.Department} {
				cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
				if err != nil {
					return nil, "", err
				}
				if err := f.SetCellValue(exportSheet, cell, v); err != nil {
					return nil, "", err
				}
			}
		}

		value := row.Status
		if row.Hours != nil {
			value = fmt.Sprintf("%s (%.2f)", row.Status, *row.Hours)
		}
		cell, err := excelize.CoordinatesToCellName(4+dateCol[row.Date], rowNum)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(exportSheet, cell, value); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", req.FromDate, req.ToDate)
	return buf, filename, nil
}

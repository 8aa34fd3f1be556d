package timelog

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	workbookSheet       = "Timesheet"
	workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	workbookHeaderRow   = 6
)

// WorkbookHeader identifies whose month a workbook covers
type WorkbookHeader struct {
	EstablishmentName string
	EmployeeName      string
	Month             time.Time
}

// RenderWorkbook writes a calendar timesheet (see FillMonth) as an xlsx document
func RenderWorkbook(header WorkbookHeader, sheet Timesheet, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	meta := [][]interface{}{
		{"Timesheet"},
		{"Establishment", header.EstablishmentName},
		{"Employee", header.EmployeeName},
		{"Month", header.Month.Format("2006-01")},
	}
	for i, row := range meta {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(workbookSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerCell, _ := excelize.CoordinatesToCellName(1, workbookHeaderRow)
	if err := f.SetSheetRow(workbookSheet, headerCell, &[]interface{}{"Date", "Weekday", "Punches", "Worked", "Minutes"}); err != nil {
		return nil, fmt.Errorf("failed to write column headers: %w", err)
	}

	row := workbookHeaderRow + 1
	for _, day := range sheet.Days {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			day.Key(),
			day.Date.Weekday().String()[:3],
			formatPunches(day.Events, loc),
			day.Worked.String(),
			day.Worked.TotalMinutes,
		}
		if err := f.SetSheetRow(workbookSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write day %s: %w", day.Key(), err)
		}
		row++
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(workbookSheet, totalCell, &[]interface{}{"Total", "", "", sheet.Total.String(), sheet.Total.TotalMinutes}); err != nil {
		return nil, fmt.Errorf("failed to write total: %w", err)
	}

	for _, cells := range [][2]string{{"A1", "A4"}, {"A6", "E6"}} {
		if err := f.SetCellStyle(workbookSheet, cells[0], cells[1], bold); err != nil {
			return nil, fmt.Errorf("failed to style cells: %w", err)
		}
	}
	lastTotal, _ := excelize.CoordinatesToCellName(5, row)
	if err := f.SetCellStyle(workbookSheet, totalCell, lastTotal, bold); err != nil {
		return nil, fmt.Errorf("failed to style total: %w", err)
	}
	if err := f.SetColWidth(workbookSheet, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(workbookSheet, "C", "C", 48); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// formatPunches renders "IN 08:00, OUT 12:00" in local time
func formatPunches(events []timelog.TimeLog, loc *time.Location) string {
	parts := make([]string, 0, len(events))
	for _, event := range events {
		parts = append(parts, fmt.Sprintf("%s %s", event.Type, event.Timestamp.In(loc).Format("15:04")))
	}
	return strings.Join(parts, ", ")
}

// workbookFilename builds e.g. timesheet-joao-conceicao-2024-05.xlsx
func workbookFilename(employeeName string, month time.Time) string {
	folded, _, err := transform.String(foldAccents(), strings.TrimSpace(employeeName))
	if err != nil {
		folded = employeeName
	}
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, folded)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "employee"
	}
	return fmt.Sprintf("timesheet-%s-%s.xlsx", slug, month.Format("2006-01"))
}

// foldAccents strips combining marks so "ção" becomes "cao"
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

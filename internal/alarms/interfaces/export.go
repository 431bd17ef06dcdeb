package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	alarms "satellite-monitor/internal/alarms/domain"
)

// BuildAlertReportPDF renders a minimal PDF report for an alert set.
func BuildAlertReportPDF(alerts []alarms.Alert, generatedAt time.Time) ([]byte, error) {
	rendered, err := RenderAlerts(alerts)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Satellite Alert Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Alerts: %d", len(rendered)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Satellite", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Severity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Component", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, "Timestamp", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, alert := range rendered {
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", alert.SatelliteID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, alert.Severity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, alert.Component, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, alert.Timestamp, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildAlertReportXLSX renders a minimal XLSX report for an alert set.
func BuildAlertReportXLSX(alerts []alarms.Alert, generatedAt time.Time) ([]byte, error) {
	rendered, err := RenderAlerts(alerts)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	summarySheet := "summary"
	alertsSheet := "alerts"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(alertsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Satellite Alert Report")
	_ = f.SetCellValue(summarySheet, "A3", "Generated")
	_ = f.SetCellValue(summarySheet, "B3", generatedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A4", "Alerts")
	_ = f.SetCellValue(summarySheet, "B4", len(rendered))

	_ = f.SetCellValue(alertsSheet, "A1", "Satellite")
	_ = f.SetCellValue(alertsSheet, "B1", "Severity")
	_ = f.SetCellValue(alertsSheet, "C1", "Component")
	_ = f.SetCellValue(alertsSheet, "D1", "Timestamp")
	for i, alert := range rendered {
		row := i + 2
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("A%d", row), alert.SatelliteID)
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("B%d", row), alert.Severity)
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("C%d", row), alert.Component)
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("D%d", row), alert.Timestamp)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

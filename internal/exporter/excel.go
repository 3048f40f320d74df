package exporter

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"specforge/internal/config"
	"specforge/internal/exporter/common"
	"specforge/internal/model"
)

const (
	overviewSheet  = "Overview"
	endpointsSheet = "Endpoints"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Name implements Exporter
func (e *ExcelExporter) Name() string { return "excel" }

// Export generates the Excel report and returns its path
func (e *ExcelExporter) Export(fsys afero.Fs, index *model.ContractIndex, cfg *config.Config) (string, error) {
	outputFile := cfg.ReportPath(".xlsx")
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return "", err
	}

	// 1. Create Overview Sheet
	if err := e.writeOverview(f, styler, index); err != nil {
		return "", err
	}

	// 2. Create Endpoints Sheet
	if err := e.writeEndpoints(f, styler, common.Flatten(index)); err != nil {
		return "", err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	// Save
	if err := fsys.MkdirAll(cfg.Contracts.OutputDir, 0755); err != nil {
		return "", err
	}
	out, err := fsys.Create(outputFile)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := f.Write(out); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return outputFile, nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, index *model.ContractIndex) error {
	sheet := overviewSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Section A: Run Summary
	row := 1
	e.writeRow(f, sheet, row, []string{"Metric", "Value"}, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"Source Root", index.SourceRoot},
		{"Output Root", index.OutputRoot},
		{"Generated At", index.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Total Contracts", len(index.Contracts)},
		{"Total Endpoints", index.EndpointCount()},
		{"Synthesized Endpoints", index.SynthesizedCount()},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
		row++
	}

	row += 2 // Spacer

	// Section B: Per-entity counts
	e.writeRow(f, sheet, row, []string{"No", "Entity", "Base Path", "Declared", "Synthesized", "Contract"}, s.HeaderStyle)
	row++

	for i, sum := range common.Summaries(index) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sum.Entity)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), sum.BasePath)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sum.Declared)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), sum.Synthesized)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), sum.Contract)

		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.NumberStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), s.EntityStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), s.DefaultStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), s.NumberStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), s.DefaultStyle)
		row++
	}

	// Adjust column widths
	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "F", "F", 60)

	return nil
}

// --- Endpoints Sheet Logic ---

func (e *ExcelExporter) writeEndpoints(f *excelize.File, s *Styler, rows []common.EndpointRow) error {
	sheet := endpointsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Entity", "Verb", "Path", "Operation", "Params (Input)", "Returns (Output)", "Tags", "Origin"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	for i, r := range rows {
		row := i + 2
		origin := "declared"
		style := s.DefaultStyle
		if r.Synthesized {
			origin = "synthesized"
			style = s.SynthesizedStyle
		}

		values := []string{r.Entity, r.Verb, r.Path, r.Operation, r.Params, r.Returns, r.Tags, origin}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, val)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), style)
	}

	// Auto width
	f.SetColWidth(sheet, "A", "A", 20) // Entity
	f.SetColWidth(sheet, "B", "B", 10) // Verb
	f.SetColWidth(sheet, "C", "C", 40) // Path
	f.SetColWidth(sheet, "D", "D", 30) // Operation
	f.SetColWidth(sheet, "E", "F", 40) // Params/Returns
	f.SetColWidth(sheet, "G", "G", 30) // Tags

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

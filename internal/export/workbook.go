package export

import (
	"fmt"
	"io"

	"github.com/piwi3910/FutonFrame/internal/model"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names. The design sheet comes first so the workbook can be
// loaded back as a design file.
const (
	SheetDesign       = "Design"
	SheetMeasurements = "Measurements"
	SheetCutList      = "Cut List"
)

// WriteWorkbook writes an XLSX workbook with the design constants, the
// measurements and the cut list on separate sheets.
func WriteWorkbook(w io.Writer, d model.Design, m model.Measurements) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetDesign); err != nil {
		return fmt.Errorf("failed to name design sheet: %w", err)
	}
	for _, sheet := range []string{SheetMeasurements, SheetCutList} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	designRows := [][]interface{}{{"Constant", "Value"}}
	for _, v := range d.Values() {
		designRows = append(designRows, []interface{}{v.Label, v.Value})
	}

	measurementRows := [][]interface{}{{"Quantity", "Value", "Printed"}}
	for _, v := range m.Quantities() {
		measurementRows = append(measurementRows, []interface{}{v.Label, v.Value, fmt.Sprintf(v.Verb, v.Value)})
	}

	cutRows := [][]interface{}{{"ID", "Member", "Length (in)", "Thickness (in)", "Quantity", "Note"}}
	for _, mem := range model.CutList(d, m) {
		cutRows = append(cutRows, []interface{}{mem.ID, mem.Name, mem.Length, mem.Thickness, mem.Quantity, mem.Note})
	}

	sheets := []struct {
		name string
		rows [][]interface{}
		last string // last header column
	}{
		{SheetDesign, designRows, "B"},
		{SheetMeasurements, measurementRows, "C"},
		{SheetCutList, cutRows, "F"},
	}
	for _, s := range sheets {
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
		if err := f.SetCellStyle(s.name, "A1", s.last+"1", header); err != nil {
			return fmt.Errorf("failed to style %q header: %w", s.name, err)
		}
		if err := f.SetColWidth(s.name, "A", "A", 30); err != nil {
			return fmt.Errorf("failed to size %q columns: %w", s.name, err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

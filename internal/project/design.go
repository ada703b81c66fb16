// Package project loads frame designs from disk and records calculation runs.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/FutonFrame/internal/model"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Design file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
)

// FormatFromPath returns the design format implied by a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported design file %q: expected .json, .yaml, .yml or .xlsx", filepath.Base(path))
	}
}

// LoadDesign reads a design file. Fields the file does not name keep their
// DefaultDesign values.
func LoadDesign(path string) (model.Design, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return model.Design{}, err
	}
	if format == FormatXLSX {
		return loadDesignWorkbook(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Design{}, fmt.Errorf("failed to read design file: %w", err)
	}
	return DecodeDesign(data, format)
}

// DecodeDesign parses JSON or YAML design data over the default design.
func DecodeDesign(data []byte, format string) (model.Design, error) {
	d := model.DefaultDesign()
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return model.Design{}, fmt.Errorf("failed to parse design JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return model.Design{}, fmt.Errorf("failed to parse design YAML: %w", err)
		}
	default:
		return model.Design{}, fmt.Errorf("unsupported design format %q", format)
	}
	return d, nil
}

// WriteDesign prints a design as JSON or YAML.
func WriteDesign(w io.Writer, d model.Design, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("failed to encode design JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("failed to encode design YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported design format %q", format)
	}
	return nil
}

// loadDesignWorkbook reads key/value rows from the first sheet of a workbook.
// The first non-empty row is treated as a header when its value cell is not
// numeric.
func loadDesignWorkbook(path string) (model.Design, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return model.Design{}, fmt.Errorf("failed to open design workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.Design{}, fmt.Errorf("design workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return model.Design{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return designFromRows(rows, sheets[0])
}

func designFromRows(rows [][]string, sheet string) (model.Design, error) {
	d := model.DefaultDesign()
	header := true
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		first := header
		header = false
		if len(row) < 2 {
			return model.Design{}, fmt.Errorf("%s row %d: missing value for %q", sheet, i+1, row[0])
		}

		key := strings.ToLower(strings.TrimSpace(row[0]))
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			if first {
				continue
			}
			return model.Design{}, fmt.Errorf("%s row %d: invalid value %q for %s", sheet, i+1, row[1], key)
		}

		if !d.Set(key, value) {
			slog.Warn("ignoring unknown design constant", "sheet", sheet, "row", i+1, "key", key)
		}
	}
	return d, nil
}

// isEmptyRow returns true if all cells in a row are empty or whitespace.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

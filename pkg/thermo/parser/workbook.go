package parser

import (
	"strconv"
	"strings"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook reads sheet grids from an xlsx/xlsm file.
type ExcelWorkbook struct {
	f *excelize.File
}

// OpenWorkbook opens an Excel workbook for reading.
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelWorkbook{f: f}, nil
}

// SheetNames returns the sheet names in workbook order.
func (w *ExcelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid reads a sheet into a Grid.
// Cached formula results are read, not the formulas.
func (w *ExcelWorkbook) Grid(sheetName string) (models.Grid, error) {
	return ReadGrid(w.f, sheetName)
}

// Close releases the underlying file.
func (w *ExcelWorkbook) Close() error {
	return w.f.Close()
}

// ReadGrid extracts the raw values of a sheet.
// Unformatted values are used so that number formats do not round the data.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for _, row := range rows {
		end := len(row)
		for end > 0 && strings.TrimSpace(row[end-1]) == "" {
			end--
		}
		cells := make(models.Row, end)
		for colIdx, cellValue := range row[:end] {
			cells[colIdx] = parseValue(cellValue)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// parseValue converts a raw cell string to float64 when it is a plain number.
// Blank cells become nil; anything else is kept as text.
func parseValue(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

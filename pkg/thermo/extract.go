package thermo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/parser"
)

// Workbook is the source of sheet grids.
type Workbook interface {
	SheetNames() []string
	Grid(sheetName string) (models.Grid, error)
}

// Build opens an Excel workbook and extracts every property table it contains.
func Build(path string, opts Options) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	return BuildWorkbook(wb, filepath.Base(path), opts)
}

// BuildWorkbook extracts tables from every sheet of wb.
// Sheets without a usable table are skipped; sheets that cannot be read are
// logged and skipped as well.
func BuildWorkbook(wb Workbook, sourceName string, opts Options) (*models.Dataset, error) {
	log := opts.logger()
	params := opts.tableParams()

	var warnings *multierror.Error
	tables := make([]models.Table, 0)

	for _, sheetName := range wb.SheetNames() {
		grid, err := wb.Grid(sheetName)
		if err != nil {
			warnings = multierror.Append(warnings, NewExtractionError(sheetName, "grid", err))
			continue
		}

		table, err := parser.BuildTable(sheetName, grid, params)
		if err != nil {
			log.Debug("sheet skipped", "sheet", sheetName, "reason", err.Error())
			continue
		}
		if table.Mode != models.ModePT && parser.SaturationSignalsConflict(sheetName, table.Columns) {
			log.Debug("ambiguous saturation index", "sheet", sheetName, "mode", string(table.Mode),
				"t_col", table.Columns[models.KeyT], "p_col", table.Columns[models.KeyP])
		}
		log.Debug("table extracted", "sheet", sheetName, "range", parser.DataRange(grid),
			"id", table.ID, "mode", string(table.Mode), "rows", table.RowCount)
		tables = append(tables, *table)
	}

	if err := warnings.ErrorOrNil(); err != nil {
		log.Warn("some sheets could not be read", "error", err)
	}

	SortTables(tables)

	return &models.Dataset{
		GeneratedAt:    opts.now().UTC().Truncate(time.Second).Format(time.RFC3339),
		SourceWorkbook: sourceName,
		TableCount:     len(tables),
		Tables:         tables,
	}, nil
}

// SortTables orders tables by fluid, then sheet name, ignoring case.
func SortTables(tables []models.Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		fi, fj := strings.ToLower(tables[i].Fluid), strings.ToLower(tables[j].Fluid)
		if fi != fj {
			return fi < fj
		}
		return strings.ToLower(tables[i].SheetName) < strings.ToLower(tables[j].SheetName)
	})
}

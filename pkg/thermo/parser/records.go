package parser

import "github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"

// carry is the last index value seen while walking data rows.
// It models a merged index cell spanning several rows.
type carry struct {
	value float64
	set   bool
}

// ExtractRecords parses every row below the header and keeps the rows that
// have the index and property values required by mode.
func ExtractRecords(grid models.Grid, cols models.Columns, mode models.Mode, headerIdx int, keys models.KeySet) []models.Record {
	if headerIdx+1 >= len(grid) {
		return nil
	}

	var records []models.Record
	var c carry
	for _, row := range grid[headerIdx+1:] {
		var rec models.Record
		rec, c = fillForward(parseRow(row, cols), mode.FillKey(), c)
		if accepts(rec, mode, keys) {
			records = append(records, rec)
		}
	}
	return records
}

func parseRow(row models.Row, cols models.Columns) models.Record {
	rec := make(models.Record, len(cols))
	for key, col := range cols {
		if col >= len(row) {
			continue
		}
		if num, ok := ToNumber(row[col]); ok {
			rec[key] = num
		}
	}
	return rec
}

// fillForward copies the carried value into rec when rec lacks key, and
// returns the carry to use for the next row.
func fillForward(rec models.Record, key string, c carry) (models.Record, carry) {
	if v, ok := rec[key]; ok {
		return rec, carry{value: v, set: true}
	}
	if c.set {
		rec[key] = c.value
	}
	return rec, c
}

func accepts(rec models.Record, mode models.Mode, keys models.KeySet) bool {
	_, hasT := rec[models.KeyT]
	_, hasP := rec[models.KeyP]

	switch mode {
	case models.ModePT:
		return hasT && hasP && hasAny(rec, keys.Grid)
	case models.ModeSatT:
		return hasT && (hasP || hasAny(rec, keys.Saturation))
	case models.ModeSatP:
		return hasP && (hasT || hasAny(rec, keys.Saturation))
	}
	return false
}

func hasAny(rec models.Record, keys []string) bool {
	for _, key := range keys {
		if _, ok := rec[key]; ok {
			return true
		}
	}
	return false
}

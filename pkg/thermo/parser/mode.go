package parser

import (
	"strings"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
)

// minSaturationColumns is the number of saturation keys that marks a saturation table.
const minSaturationColumns = 3

// DetectMode infers the table shape from the mapped columns.
// Both T and P must be mapped; otherwise the sheet has no mode.
func DetectMode(sheetName string, cols models.Columns, keys models.KeySet) (models.Mode, bool) {
	tCol, hasT := cols[models.KeyT]
	pCol, hasP := cols[models.KeyP]
	if !hasT || !hasP {
		return "", false
	}

	if keys.CountSaturation(cols) >= minSaturationColumns {
		if strings.Contains(strings.ToLower(sheetName), "pressure") || pCol < tCol {
			return models.ModeSatP, true
		}
		return models.ModeSatT, true
	}
	if keys.CountGrid(cols) >= 1 {
		return models.ModePT, true
	}
	return "", false
}

// SaturationSignalsConflict reports whether the sheet name and the column order
// point at different index keys, e.g. a "Pressure" sheet with T before P.
func SaturationSignalsConflict(sheetName string, cols models.Columns) bool {
	tCol, hasT := cols[models.KeyT]
	pCol, hasP := cols[models.KeyP]
	if !hasT || !hasP {
		return false
	}
	name := strings.ToLower(sheetName)
	pFirst := pCol < tCol
	return (strings.Contains(name, "pressure") && !pFirst) ||
		(strings.Contains(name, "temperature") && pFirst)
}

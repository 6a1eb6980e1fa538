package parser

import "github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"

// MapColumns classifies every column reachable from the header window.
// When several columns yield the same key the leftmost one is kept.
func MapColumns(grid models.Grid, headerIdx int, c *Classifier) models.Columns {
	cols := make(models.Columns)
	width := grid.Width(headerIdx + 3)
	for col := 0; col < width; col++ {
		key, ok := c.Classify(HeaderText(grid, headerIdx, col))
		if !ok {
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = col
		}
	}
	return cols
}

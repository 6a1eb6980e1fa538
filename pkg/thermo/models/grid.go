// Package models defines data structures for thermodynamic table extraction.
package models

// Row is one spreadsheet row of raw cell values.
// A value is nil (blank), float64 or string. Trailing blank cells are trimmed.
type Row []interface{}

// Grid is the ordered list of rows read from a single sheet.
type Grid []Row

// Width returns the length of the widest row in g[:end].
func (g Grid) Width(end int) int {
	if end > len(g) {
		end = len(g)
	}
	width := 0
	for _, row := range g[:end] {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Cell returns the value at (row, col), or nil when out of range.
func (g Grid) Cell(row, col int) interface{} {
	if row < 0 || row >= len(g) {
		return nil
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

package parser

import (
	"math"
	"slices"
	"strings"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
)

// headerKeywords are words that show up in property table column titles.
var headerKeywords = []string{
	"temp",
	"temperature",
	"pressure",
	"volume",
	"internal",
	"energy",
	"enthalpy",
	"entropy",
	"sat",
}

// LocateHeaderRow picks the most likely header row among the first scanRows rows.
// Keywords count 4 each, text cells 1 each and numeric cells -2 each.
// On ties the earliest row wins.
func LocateHeaderRow(grid models.Grid, scanRows int) int {
	best := 0
	bestScore := math.MinInt

	for idx, row := range grid {
		if idx >= scanRows {
			break
		}
		var texts []string
		numeric := 0
		for _, cell := range row {
			if text := CleanText(cell); text != "" {
				texts = append(texts, text)
			}
			if _, ok := ToNumber(cell); ok {
				numeric++
			}
		}
		if len(texts) == 0 {
			continue
		}

		joined := strings.ToLower(strings.Join(texts, " "))
		hits := 0
		for _, key := range headerKeywords {
			if strings.Contains(joined, key) {
				hits++
			}
		}

		score := hits*4 + len(texts) - numeric*2
		if score > bestScore {
			best = idx
			bestScore = score
		}
	}

	return best
}

// HeaderText assembles the label of a column from the rows around the header
// row, tolerating unit rows above or below and merged titles.
func HeaderText(grid models.Grid, headerIdx, col int) string {
	start := headerIdx - 1
	if start < 0 {
		start = 0
	}
	end := headerIdx + 3
	if end > len(grid) {
		end = len(grid)
	}

	var pieces []string
	for r := start; r < end; r++ {
		text := CleanText(grid.Cell(r, col))
		if text == "" || slices.Contains(pieces, text) {
			continue
		}
		pieces = append(pieces, text)
	}
	return strings.Join(pieces, " | ")
}

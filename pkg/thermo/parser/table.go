package parser

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	"gonum.org/v1/gonum/floats"
)

// Reasons a sheet yields no table. They are not failures: the sheet is
// simply left out of the dataset.
var (
	ErrEmptySheet   = errors.New("sheet is empty")
	ErrNoMode       = errors.New("no pressure/temperature or saturation layout")
	ErrTooFewRows   = errors.New("too few rows")
	ErrNoProperties = errors.New("no property columns")
)

// TableParams holds parameters for table extraction.
type TableParams struct {
	Keys           models.KeySet
	Classifier     *Classifier
	HeaderScanRows int
	MinRows        int
}

// DefaultTableParams returns default table extraction parameters.
func DefaultTableParams() TableParams {
	keys := models.DefaultKeySet()
	return TableParams{
		Keys:           keys,
		Classifier:     NewClassifier(keys),
		HeaderScanRows: 12,
		MinRows:        3,
	}
}

// BuildTable runs the extraction pipeline over one sheet.
func BuildTable(sheetName string, grid models.Grid, params TableParams) (*models.Table, error) {
	if len(grid) == 0 {
		return nil, ErrEmptySheet
	}
	if params.Classifier == nil {
		params.Classifier = NewClassifier(params.Keys)
	}

	headerIdx := LocateHeaderRow(grid, params.HeaderScanRows)
	cols := MapColumns(grid, headerIdx, params.Classifier)
	mode, ok := DetectMode(sheetName, cols, params.Keys)
	if !ok {
		return nil, ErrNoMode
	}

	records := ExtractRecords(grid, cols, mode, headerIdx, params.Keys)
	records = DedupeAndSort(records, mode)
	if len(records) < params.MinRows {
		return nil, ErrTooFewRows
	}

	props := propertyKeys(records, params.Keys)
	if len(props) == 0 {
		return nil, ErrNoProperties
	}

	return &models.Table{
		ID:         TableID(sheetName),
		SheetName:  sheetName,
		Fluid:      InferFluid(sheetName),
		UnitSystem: InferUnitSystem(sheetName),
		Mode:       mode,
		Columns:    cols,
		Properties: props,
		RowCount:   len(records),
		Rows:       records,
		Inputs:     inputRanges(records, mode),
	}, nil
}

var (
	engPrefix   = regexp.MustCompile(`(?i)^eng_`)
	swPrefix    = regexp.MustCompile(`(?i)^s\.w\.\s*`)
	phaseWords  = regexp.MustCompile(`(?i)\b(?:superheated|saturated|compressed|solid|vapor|liquid|entry)\b`)
	separators  = regexp.MustCompile(`[_-]+`)
	whitespace  = regexp.MustCompile(`\s+`)
	idSeparator = regexp.MustCompile(`[^a-z0-9]+`)
)

// TableID slugs a sheet name: "ENG_Superheated Water" -> "eng-superheated-water".
func TableID(sheetName string) string {
	return strings.Trim(idSeparator.ReplaceAllString(strings.ToLower(sheetName), "-"), "-")
}

// InferFluid strips unit prefixes and phase words from a sheet name.
// It falls back to the sheet name when nothing is left.
func InferFluid(sheetName string) string {
	text := engPrefix.ReplaceAllString(sheetName, "")
	text = swPrefix.ReplaceAllString(text, "")
	text = phaseWords.ReplaceAllString(text, "")
	text = separators.ReplaceAllString(text, " ")
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	if text == "" {
		return sheetName
	}
	return text
}

// InferUnitSystem returns "ENG" for sheets prefixed with ENG_, else "SI".
func InferUnitSystem(sheetName string) string {
	if strings.HasPrefix(strings.ToUpper(sheetName), "ENG_") {
		return "ENG"
	}
	return "SI"
}

func propertyKeys(records []models.Record, keys models.KeySet) []string {
	set := make(map[string]struct{})
	for _, rec := range records {
		for key := range rec {
			if !keys.IsIndex(key) {
				set[key] = struct{}{}
			}
		}
	}
	props := make([]string, 0, len(set))
	for key := range set {
		props = append(props, key)
	}
	sort.Strings(props)
	return props
}

func inputRanges(records []models.Record, mode models.Mode) map[string]models.Range {
	inputs := make(map[string]models.Range)
	for _, key := range mode.InputKeys() {
		var values []float64
		for _, rec := range records {
			if v, ok := rec[key]; ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		inputs[key] = models.Range{Min: floats.Min(values), Max: floats.Max(values)}
	}
	return inputs
}

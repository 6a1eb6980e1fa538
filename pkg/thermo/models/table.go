package models

// Columns maps a canonical property key to its zero-based column index.
type Columns map[string]int

// Record maps a canonical property key to the parsed value of one row.
// Only keys with a successfully parsed number are present.
type Record map[string]float64

// Range is the observed span of an index key.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Table represents the normalized lookup table extracted from one sheet.
type Table struct {
	// ID is the slug of the sheet name.
	ID string `json:"id" yaml:"id"`
	// SheetName is the sheet name as it appears in the workbook.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	// Fluid is the sheet name stripped of phase and unit words.
	Fluid string `json:"fluid" yaml:"fluid"`
	// UnitSystem is "ENG" or "SI".
	UnitSystem string `json:"unit_system" yaml:"unit_system"`
	// Mode is the table shape.
	Mode Mode `json:"mode" yaml:"mode"`
	// Columns is the header mapping used for extraction.
	Columns Columns `json:"columns" yaml:"columns"`
	// Properties is the sorted set of non-index keys present in rows.
	Properties []string `json:"properties" yaml:"properties"`
	// RowCount is len(Rows).
	RowCount int `json:"row_count" yaml:"row_count"`
	// Rows are ordered ascending by the mode's index keys.
	Rows []Record `json:"rows" yaml:"rows"`
	// Inputs maps each index key to its observed min/max.
	Inputs map[string]Range `json:"inputs" yaml:"inputs"`
}

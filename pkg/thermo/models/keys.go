package models

import "slices"

// Index keys shared by every table.
const (
	KeyT = "T"
	KeyP = "P"
)

// KeySet is the universe of canonical property keys recognized by the classifier.
type KeySet struct {
	// Saturation lists liquid/vapor/evaporation keys (vf, vfg, vg, ...).
	Saturation []string
	// Grid lists single-phase keys of pressure-temperature tables.
	Grid []string
	// Index lists the independent variables (T, P).
	Index []string
}

// DefaultKeySet returns the keys used by steam and refrigerant property tables.
func DefaultKeySet() KeySet {
	return KeySet{
		Saturation: []string{"vf", "vfg", "vg", "uf", "ufg", "ug", "hf", "hfg", "hg", "sf", "sfg", "sg"},
		Grid:       []string{"v", "u", "h", "s"},
		Index:      []string{KeyT, KeyP},
	}
}

// Contains reports whether key belongs to any group of the set.
func (k KeySet) Contains(key string) bool {
	return slices.Contains(k.Saturation, key) || slices.Contains(k.Grid, key) || slices.Contains(k.Index, key)
}

// IsIndex reports whether key is an index key.
func (k KeySet) IsIndex(key string) bool {
	return slices.Contains(k.Index, key)
}

// CountSaturation returns how many saturation keys are present in cols.
func (k KeySet) CountSaturation(cols Columns) int {
	return countMapped(k.Saturation, cols)
}

// CountGrid returns how many grid keys are present in cols.
func (k KeySet) CountGrid(cols Columns) int {
	return countMapped(k.Grid, cols)
}

func countMapped(list []string, cols Columns) int {
	n := 0
	for _, key := range list {
		if _, ok := cols[key]; ok {
			n++
		}
	}
	return n
}

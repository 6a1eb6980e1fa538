package models

// Mode is the structural shape of a property table.
type Mode string

const (
	// ModePT is a two-dimensional pressure-temperature grid (superheated, compressed).
	ModePT Mode = "PT"
	// ModeSatT is a saturation curve indexed by temperature.
	ModeSatT Mode = "sat-T"
	// ModeSatP is a saturation curve indexed by pressure.
	ModeSatP Mode = "sat-P"
)

// FillKey returns the index key that is forward-filled across merged cells.
func (m Mode) FillKey() string {
	if m == ModeSatT {
		return KeyT
	}
	return KeyP
}

// IndexKeys returns the keys rows are deduplicated and sorted by, in priority order.
func (m Mode) IndexKeys() []string {
	switch m {
	case ModePT:
		return []string{KeyP, KeyT}
	case ModeSatT:
		return []string{KeyT}
	case ModeSatP:
		return []string{KeyP}
	}
	return nil
}

// InputKeys returns the keys reported in Table.Inputs.
func (m Mode) InputKeys() []string {
	if m == ModePT {
		return []string{KeyT, KeyP}
	}
	return m.IndexKeys()
}

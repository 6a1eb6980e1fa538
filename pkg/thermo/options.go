// Package thermo builds normalized thermodynamic lookup tables from Excel workbooks.
package thermo

import (
	"log/slog"
	"time"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/parser"
)

// Options configures dataset building.
type Options struct {
	// Keys is the universe of canonical property keys.
	Keys models.KeySet
	// HeaderScanRows is how many top rows are considered when locating the header.
	HeaderScanRows int
	// MinRows is the minimum number of deduplicated rows a table must keep.
	MinRows int
	// Logger receives per-sheet diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Now stamps GeneratedAt. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	params := parser.DefaultTableParams()
	return Options{
		Keys:           params.Keys,
		HeaderScanRows: params.HeaderScanRows,
		MinRows:        params.MinRows,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) tableParams() parser.TableParams {
	params := parser.DefaultTableParams()
	if o.Keys.Saturation != nil || o.Keys.Grid != nil || o.Keys.Index != nil {
		params.Keys = o.Keys
		params.Classifier = parser.NewClassifier(o.Keys)
	}
	if o.HeaderScanRows > 0 {
		params.HeaderScanRows = o.HeaderScanRows
	}
	if o.MinRows > 0 {
		params.MinRows = o.MinRows
	}
	return params
}

package parser

import (
	"cmp"
	"math"
	"slices"

	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
)

// DedupeAndSort drops records whose index keys repeat an earlier record
// (compared at 1e-9) and stable-sorts the rest ascending by the index keys.
// Records missing a sort key go last.
func DedupeAndSort(records []models.Record, mode models.Mode) []models.Record {
	keys := mode.IndexKeys()
	seen := make(map[[2]float64]struct{}, len(records))
	out := make([]models.Record, 0, len(records))

	for _, rec := range records {
		var k [2]float64
		for i, key := range keys {
			k[i] = round9(rec[key])
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rec)
	}

	slices.SortStableFunc(out, func(a, b models.Record) int {
		for _, key := range keys {
			if c := cmp.Compare(sortValue(a, key), sortValue(b, key)); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

func round9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func sortValue(rec models.Record, key string) float64 {
	if v, ok := rec[key]; ok {
		return v
	}
	return math.Inf(1)
}

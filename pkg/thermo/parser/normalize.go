// Package parser turns raw sheet grids into normalized property tables.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// CleanText stringifies a cell value, trims it and collapses internal whitespace.
// Blank cells yield "".
func CleanText(value interface{}) string {
	if value == nil {
		return ""
	}
	text, err := cast.ToStringE(value)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeText lower-cases text and replaces every non-alphanumeric run with
// a single space. Only used for keyword matching.
func NormalizeText(text string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(text), " "))
}

// ToNumber coerces a cell value to a finite float64.
// Text labels, blanks and non-finite values report false.
func ToNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		text := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if text == "" {
			return 0, false
		}
		num, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return finite(num)
	default:
		num, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		return finite(num)
	}
}

func finite(num float64) (float64, bool) {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

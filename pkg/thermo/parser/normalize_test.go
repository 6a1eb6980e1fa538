package parser

import (
	"math"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"", ""},
		{"   ", ""},
		{"  Sat.   Liquid\n(vf) ", "Sat. Liquid (vf)"},
		{float64(32), "32"},
		{0.01602, "0.01602"},
		{100, "100"},
	}

	for _, tt := range tests {
		result := CleanText(tt.input)
		if result != tt.expected {
			t.Errorf("CleanText(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Sat. Liquid (vf)", "sat liquid vf"},
		{"Internal Energy | kJ/kg", "internal energy kj kg"},
		{"--T--", "t"},
		{"", ""},
	}

	for _, tt := range tests {
		result := NormalizeText(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected float64
		ok       bool
	}{
		{"1,234.5", 1234.5, true},
		{" 42 ", 42, true},
		{"-0.5e3", -500, true},
		{float64(3.25), 3.25, true},
		{7, 7, true},
		{int64(-3), -3, true},
		{"", 0, false},
		{"   ", 0, false},
		{nil, 0, false},
		{"abc", 0, false},
		{"Sat.", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
		{math.Inf(1), 0, false},
		{math.NaN(), 0, false},
	}

	for _, tt := range tests {
		result, ok := ToNumber(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ToNumber(%v) = (%v, %v), expected (%v, %v)", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

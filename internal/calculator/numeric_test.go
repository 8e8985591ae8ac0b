package calculator

import (
	"encoding/json"
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{-0.001, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.001, 1},
		{100, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNumeric_ValidInputs(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", 1.5, 1.5},
		{"float32", float32(2), 2},
		{"int", 7, 7},
		{"int64", int64(-3), -3},
		{"uint64", uint64(9), 9},
		{"string", "1.5", 1.5},
		{"string with spaces", " 2.25 ", 2.25},
		{"negative string", "-0.5", -0.5},
		{"json number", json.Number("3.75"), 3.75},
	}
	for _, tt := range tests {
		got, ok := ParseNumeric(tt.in)
		if !ok {
			t.Errorf("%s: ParseNumeric(%v) not ok", tt.name, tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: ParseNumeric(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestParseNumeric_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"bool", true},
		{"non-numeric string", "abc"},
		{"empty string", ""},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"inf string", "Inf"},
		{"map", map[string]any{}},
	}
	for _, tt := range tests {
		if _, ok := ParseNumeric(tt.in); ok {
			t.Errorf("%s: ParseNumeric(%v) should not be ok", tt.name, tt.in)
		}
	}
}

package mathexpr

import (
	"math"
	"reflect"
	"testing"
)

func TestParseMonomials(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]float64
	}{
		{"", map[string]float64{}},
		{"5", map[string]float64{"const": 5}},
		{"-5", map[string]float64{"const": -5}},
		{"x", map[string]float64{"x^1": 1}},
		{"-x", map[string]float64{"x^1": -1}},
		{"2x", map[string]float64{"x^1": 2}},
		{"x^2", map[string]float64{"x^2": 1}},
		{"3x^2", map[string]float64{"x^2": 3}},
		{"x+1", map[string]float64{"x^1": 1, "const": 1}},
		{"1+x", map[string]float64{"x^1": 1, "const": 1}},
		{"x + x", map[string]float64{"x^1": 2}},
		{"2x - 3x", map[string]float64{"x^1": -1}},
		{"x^2 - 2x + 1", map[string]float64{"x^2": 1, "x^1": -2, "const": 1}},
		{"0.5y", map[string]float64{"y^1": 0.5}},
		{"x + 2 - 2", map[string]float64{"x^1": 1, "const": 0}},
	}

	for _, tt := range tests {
		got := ParseMonomials(tt.in)
		if !monomialMapsEqual(got, tt.want) {
			t.Errorf("ParseMonomials(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMonomialsSkipsUnparseable(t *testing.T) {
	// Function and product terms are outside the decomposer's scope and
	// are skipped rather than misread.
	got := ParseMonomials("sin(x) + 2x")
	want := map[string]float64{"x^1": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMonomials = %v, want %v", got, want)
	}
}

func monomialMapsEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || math.Abs(av-bv) > 1e-9 {
			return false
		}
	}
	return true
}

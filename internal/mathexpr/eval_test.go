package mathexpr

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"-7", -7},
		{"3.5", 3.5},
		{"1/2", 0.5},
		{"-1/2", -0.5},
		{"2/4", 0.5},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"2^10", 1024},
		{"2^3^2", 512}, // right-associative
		{"-2^2", -4},   // unary minus binds looser than ^
		{"sqrt(16)", 4},
		{"sqrt 16", 4},
		{"√9", 3},
	}

	for _, tt := range tests {
		got, ok := Evaluate(tt.in)
		if !ok {
			t.Errorf("Evaluate(%q): no value, want %v", tt.in, tt.want)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEvaluateConstants(t *testing.T) {
	if v, ok := Evaluate("pi"); !ok || math.Abs(v-math.Pi) > 1e-12 {
		t.Errorf("Evaluate(pi) = %v, %v", v, ok)
	}
	if v, ok := Evaluate("π"); !ok || math.Abs(v-math.Pi) > 1e-12 {
		t.Errorf("Evaluate(π) = %v, %v", v, ok)
	}
	if v, ok := Evaluate("2pi"); !ok || math.Abs(v-2*math.Pi) > 1e-12 {
		t.Errorf("Evaluate(2pi) = %v, %v", v, ok)
	}
	if v, ok := Evaluate("e"); !ok || math.Abs(v-math.E) > 1e-12 {
		t.Errorf("Evaluate(e) = %v, %v", v, ok)
	}
}

func TestEvaluateNoValue(t *testing.T) {
	tests := []string{
		"",
		"x",
		"2x",
		"2x+5",
		"x+1",
		"3a-1",
		"hello",
		"1/0",
		"0/0",
		"(1+2",
		"sqrt(-1)",
		"1+",
		"alert(1)",
	}

	for _, in := range tests {
		if v, ok := Evaluate(in); ok {
			t.Errorf("Evaluate(%q) = %v, want no value", in, v)
		}
	}
}

func TestEvaluateUnitSuffix(t *testing.T) {
	// A number with a trailing unit word keeps its value; a trailing
	// single letter is a variable and must not.
	tests := []struct {
		in   string
		want float64
	}{
		{"3cm", 3},
		{"3 cm", 3},
		{"4.5kg", 4.5},
		{"-2meters", -2},
	}

	for _, tt := range tests {
		got, ok := Evaluate(tt.in)
		if !ok || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, %v, want %v", tt.in, got, ok, tt.want)
		}
	}

	for _, in := range []string{"3m", "2x", "12y^2"} {
		if v, ok := Evaluate(in); ok {
			t.Errorf("Evaluate(%q) = %v, want no value", in, v)
		}
	}
}

func TestEvaluateFractionPrecision(t *testing.T) {
	// The fraction fast path must agree exactly with the decimal form.
	v, ok := Evaluate("1/2")
	if !ok || v != 0.5 {
		t.Fatalf("Evaluate(1/2) = %v, %v, want exactly 0.5", v, ok)
	}
}

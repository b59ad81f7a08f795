package equivalence

import (
	"fmt"
	"testing"
)

func TestCheckExact(t *testing.T) {
	// For any numeric literal a, Check(str(a), str(a)) is Exact.
	for _, a := range []float64{0, 1, -1, 3.5, 42, -17.25} {
		s := fmt.Sprintf("%v", a)
		v := Check(s, s, 0)
		if !v.Equivalent || v.Method != MethodExact {
			t.Errorf("Check(%q, %q) = %+v, want Exact", s, s, v)
		}
	}
}

func TestCheckExactAfterNormalization(t *testing.T) {
	tests := []struct{ user, expected string }{
		{" 42 ", "42"},
		{"2X", "2x"},
		{"2×3", "2*3"},
		{"+7", "7"},
	}
	for _, tt := range tests {
		v := Check(tt.user, tt.expected, 0)
		if !v.Equivalent || v.Method != MethodExact {
			t.Errorf("Check(%q, %q) = %+v, want Exact", tt.user, tt.expected, v)
		}
	}
}

func TestCheckNumeric(t *testing.T) {
	tests := []struct{ user, expected string }{
		{"1/2", "0.5"},
		{"2/4", "0.5"},
		{"0.25", "1/4"},
		{"sqrt(16)", "4"},
		{"2^3", "8"},
		{"3.14159", "pi"},
	}
	for _, tt := range tests {
		v := Check(tt.user, tt.expected, 0.01)
		if !v.Equivalent || v.Method != MethodNumeric {
			t.Errorf("Check(%q, %q) = %+v, want Numeric equivalent", tt.user, tt.expected, v)
		}
	}
}

func TestCheckNumericValuesReported(t *testing.T) {
	v := Check("1/2", "0.5", 0)
	if v.UserValue != 0.5 || v.ExpectedValue != 0.5 {
		t.Errorf("values = %v, %v, want 0.5, 0.5", v.UserValue, v.ExpectedValue)
	}
}

func TestCheckNearMiss(t *testing.T) {
	// Inside tolerance*100 but outside tolerance: not equivalent, IsClose.
	v := Check("0.505", "0.5", 1e-4)
	if v.Equivalent {
		t.Fatalf("near miss must not be equivalent: %+v", v)
	}
	if v.Method != MethodNumeric || !v.IsClose {
		t.Errorf("Check(0.505, 0.5) = %+v, want Numeric near miss", v)
	}
}

func TestCheckNumericMismatch(t *testing.T) {
	v := Check("7", "0.5", 1e-4)
	if v.Equivalent || v.IsClose {
		t.Errorf("Check(7, 0.5) = %+v, want None without IsClose", v)
	}
	if v.Method != MethodNone {
		t.Errorf("method = %q, want none", v.Method)
	}
}

func TestCheckAlgebraic(t *testing.T) {
	tests := []struct{ user, expected string }{
		{"x+1", "1+x"},
		{"x + x", "2x"},
		{"2x + 3", "3 + 2x"},
		{"x^2 - 1", "-1 + x^2"},
		{"0.5y + 1", "1 + 0.5y"},
	}
	for _, tt := range tests {
		v := Check(tt.user, tt.expected, 0)
		if !v.Equivalent || v.Method != MethodAlgebraic {
			t.Errorf("Check(%q, %q) = %+v, want Algebraic", tt.user, tt.expected, v)
		}
	}
}

func TestCheckAlgebraicMismatch(t *testing.T) {
	tests := []struct{ user, expected string }{
		{"x+1", "x+2"},
		{"2x", "3x"},
		{"x", "y"},
		{"x^2", "x"},
	}
	for _, tt := range tests {
		v := Check(tt.user, tt.expected, 0)
		if v.Equivalent {
			t.Errorf("Check(%q, %q) = %+v, want not equivalent", tt.user, tt.expected, v)
		}
	}
}

func TestCheckAlgebraicSkipsNumericTier(t *testing.T) {
	// Expressions with variables carry no numeric value, so the numeric
	// tier must stay silent: a matching leading coefficient must not
	// grade a wrong answer correct, and a commuted form must reach the
	// algebraic tier instead of stalling in the near-miss band.
	v := Check("2x+5", "2x+4", 1)
	if v.Equivalent || v.Method != MethodNone {
		t.Errorf("Check(2x+5, 2x+4) = %+v, want None", v)
	}

	v = Check("2x+1", "1+2x", 1)
	if !v.Equivalent || v.Method != MethodAlgebraic {
		t.Errorf("Check(2x+1, 1+2x) = %+v, want Algebraic", v)
	}
	if v.IsClose {
		t.Errorf("Check(2x+1, 1+2x) flagged IsClose: %+v", v)
	}
}

func TestCheckAlgebraicRequiresVariablesBothSides(t *testing.T) {
	// "x" vs a plain number must not reach a false algebraic positive.
	v := Check("x", "5", 0)
	if v.Equivalent {
		t.Errorf("Check(x, 5) = %+v, want not equivalent", v)
	}
}

func TestCheckNone(t *testing.T) {
	tests := []struct{ user, expected string }{
		{"", "5"},
		{"", ""},
		{"banana", "5"},
		{"x+1", "5"},
	}
	for _, tt := range tests {
		v := Check(tt.user, tt.expected, 0)
		if v.Equivalent || v.Method != MethodNone {
			t.Errorf("Check(%q, %q) = %+v, want None", tt.user, tt.expected, v)
		}
	}
}

func TestCheckToleranceDefault(t *testing.T) {
	// tolerance <= 0 selects the default 1e-4 band.
	v := Check("0.50005", "0.5", 0)
	if !v.Equivalent || v.Method != MethodNumeric {
		t.Errorf("Check with default tolerance = %+v, want Numeric equivalent", v)
	}
}

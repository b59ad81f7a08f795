package mathexpr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  42  ", "42"},
		{"X + 1", "x+1"},
		{"2x", "2*x"},
		{"3 X", "3*x"},
		{"2×3", "2*3"},
		{"8÷4", "8/4"},
		{"2·x", "2*x"},
		{"−5", "-5"},
		{"x²", "x^2"},
		{"x³", "x^3"},
		{"√9", "sqrt9"},
		{"2π", "2*pi"},
		{"+7", "7"},
		{"+x", "x"},
		{"1 234", "1234"},
		{"3pi", "3*pi"},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeNeverEmpty_OnlyForEmptyInput(t *testing.T) {
	if got := Normalize("   "); got != "" {
		t.Errorf("whitespace-only input should normalize to empty, got %q", got)
	}
}

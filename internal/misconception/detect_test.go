package misconception

import (
	"testing"

	"golang.org/x/mod/semver"
)

func ids(list []Misconception) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.ID
	}
	return out
}

func contains(list []Misconception, id string) bool {
	for _, m := range list {
		if m.ID == id {
			return true
		}
	}
	return false
}

func TestDetectSignError(t *testing.T) {
	got := Detect("-4", "4")
	if !contains(got, "sign-error") {
		t.Errorf("Detect(-4, 4) = %v, want sign-error", ids(got))
	}
}

func TestDetectFactorAndPowerRootTogether(t *testing.T) {
	// 2 vs 4: ratio 0.5 (factor omitted) and 2 = sqrt(4) (power/root).
	// Both legitimately fire for the same pair.
	got := Detect("2", "4")
	if !contains(got, "missing-factor") {
		t.Errorf("Detect(2, 4) = %v, want missing-factor", ids(got))
	}
	if !contains(got, "power-root-confusion") {
		t.Errorf("Detect(2, 4) = %v, want power-root-confusion", ids(got))
	}
}

func TestDetectInvertedFraction(t *testing.T) {
	got := Detect("2", "0.5")
	if !contains(got, "inverted-fraction") {
		t.Errorf("Detect(2, 0.5) = %v, want inverted-fraction", ids(got))
	}
	got = Detect("3/4", "4/3")
	if !contains(got, "inverted-fraction") {
		t.Errorf("Detect(3/4, 4/3) = %v, want inverted-fraction", ids(got))
	}
}

func TestDetectDecimalPlacement(t *testing.T) {
	tests := []struct{ user, expected string }{
		{"35", "3.5"},
		{"0.35", "3.5"},
		{"3500", "3.5"},
	}
	for _, tt := range tests {
		got := Detect(tt.user, tt.expected)
		if !contains(got, "decimal-placement") {
			t.Errorf("Detect(%q, %q) = %v, want decimal-placement", tt.user, tt.expected, ids(got))
		}
	}
}

func TestDetectUnitConversion(t *testing.T) {
	// 120 seconds entered where 2 minutes expected.
	got := Detect("120", "2")
	if !contains(got, "unit-conversion") {
		t.Errorf("Detect(120, 2) = %v, want unit-conversion", ids(got))
	}
}

func TestDetectPiFactor(t *testing.T) {
	// Learner dropped a π: 6.28 vs expected 2 (ratio ≈ π).
	got := Detect("6.28", "2")
	if !contains(got, "missing-factor") {
		t.Errorf("Detect(6.28, 2) = %v, want missing-factor", ids(got))
	}
}

func TestDetectNoMatch(t *testing.T) {
	if got := Detect("7.3", "42"); len(got) != 0 {
		t.Errorf("Detect(7.3, 42) = %v, want none", ids(got))
	}
}

func TestDetectNonNumericInputs(t *testing.T) {
	if got := Detect("banana", "4"); got != nil {
		t.Errorf("Detect(banana, 4) = %v, want nil", ids(got))
	}
	if got := Detect("4", ""); got != nil {
		t.Errorf("Detect(4, \"\") = %v, want nil", ids(got))
	}
}

func TestDetectExpectedZeroIsSafe(t *testing.T) {
	// Ratio predicates cannot divide by zero; must not panic or match wildly.
	got := Detect("5", "0")
	for _, id := range []string{"missing-factor", "decimal-placement", "unit-conversion", "sign-error"} {
		if contains(got, id) {
			t.Errorf("Detect(5, 0) wrongly matched %s", id)
		}
	}
}

func TestOrderOfOperationsNeverMatches(t *testing.T) {
	// Reserved slot: stays in the catalog but cannot fire.
	for _, pair := range [][2]string{{"9", "11"}, {"20", "14"}, {"-3", "3"}} {
		got := Detect(pair[0], pair[1])
		if contains(got, "order-of-operations") {
			t.Errorf("Detect(%q, %q) matched order-of-operations; predicate is a documented no-op", pair[0], pair[1])
		}
	}
}

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 7 {
		t.Fatalf("catalog has %d entries, want 7", len(all))
	}
	for _, m := range all {
		if m.ID == "" || m.Name == "" || m.Description == "" || m.RemediationHint == "" {
			t.Errorf("catalog entry %+v has empty fields", m)
		}
		if Get(m.ID) == nil {
			t.Errorf("Get(%q) = nil", m.ID)
		}
	}
	if Get("no-such-id") != nil {
		t.Error("Get(no-such-id) should be nil")
	}
	if !semver.IsValid(CatalogVersion) {
		t.Errorf("invalid catalog version %q", CatalogVersion)
	}
}

func TestCatalogNewerThan(t *testing.T) {
	tests := []struct {
		recorded string
		want     bool
	}{
		{"", true}, // pre-versioning events
		{"v0.9.0", true},
		{CatalogVersion, false},
		{"v99.0.0", false},
	}
	for _, tt := range tests {
		if got := CatalogNewerThan(tt.recorded); got != tt.want {
			t.Errorf("CatalogNewerThan(%q) = %v, want %v", tt.recorded, got, tt.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	a := *Get("sign-error")
	b := *Get("missing-factor")
	got := Dedupe([]Misconception{a, b, a})
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("Dedupe = %v", ids(got))
	}
}

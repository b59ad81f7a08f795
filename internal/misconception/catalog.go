// Package misconception labels why a wrong answer is wrong, by running a
// fixed catalog of diagnostic predicates over the learner's and expected
// answers. The catalog is data, not behavior: a versioned, seeded table
// whose entries are never created dynamically.
package misconception

import (
	"fmt"
	"math"

	"golang.org/x/mod/semver"
)

// CatalogVersion identifies the predicate catalog revision. Bump the
// minor version when predicates change behavior, the major version when
// entries are added or removed (IDs are part of the client contract).
const CatalogVersion = "v1.0.0"

// CatalogNewerThan reports whether the running catalog supersedes the
// version a stored event was recorded under. Events written before
// versioned storage carry an empty string and always count as stale.
func CatalogNewerThan(recorded string) bool {
	if recorded == "" {
		return true
	}
	return semver.Compare(CatalogVersion, recorded) > 0
}

// Misconception is one catalogued error pattern. Immutable; drawn from
// the seeded catalog only.
type Misconception struct {
	ID              string
	Name            string
	Description     string
	RemediationHint string
}

// predicate reports whether the (user, expected) value pair exhibits the
// pattern. Predicates are pure and independent: a wrong answer may match
// zero, one, or several.
type predicate func(user, expected float64) bool

type entry struct {
	Misconception
	matches predicate
}

const (
	// valueTolerance is the absolute tolerance for direct value checks
	// (sign error, power/root confusion).
	valueTolerance = 1e-4

	// ratioTolerance is the tolerance for ratio and product checks.
	// Looser than valueTolerance: learners round intermediate results,
	// so 6.28/2 should still register as a factor of π.
	ratioTolerance = 0.01
)

var factorSet = []float64{2, 0.5, 10, 0.1, math.Pi, 1 / math.Pi}
var decimalShifts = []float64{10, 100, 1000, 0.1, 0.01, 0.001}
var unitRatios = []float64{60, 1.0 / 60, 3600, 1.0 / 3600, 1000, 0.001, 100, 0.01}

// catalog is the fixed, ordered misconception table.
var catalog = []entry{
	{
		Misconception: Misconception{
			ID:              "sign-error",
			Name:            "Sign error",
			Description:     "The answer has the wrong sign but the right magnitude.",
			RemediationHint: "Check the sign of each term before combining. Watch for subtraction of a negative.",
		},
		matches: func(user, expected float64) bool {
			return expected != 0 && math.Abs(user+expected) <= valueTolerance
		},
	},
	{
		Misconception: Misconception{
			ID:              "missing-factor",
			Name:            "Factor omitted or added",
			Description:     "The answer is off by a common constant factor such as 2, 10, or π.",
			RemediationHint: "Recount the factors in the formula — did you halve, double, or drop a π?",
		},
		matches: func(user, expected float64) bool {
			return ratioNearAny(user, expected, factorSet)
		},
	},
	{
		Misconception: Misconception{
			ID:              "inverted-fraction",
			Name:            "Fraction inverted",
			Description:     "The answer is the reciprocal of the expected value.",
			RemediationHint: "Check which quantity belongs in the numerator. Dividing by a fraction means multiplying by its reciprocal.",
		},
		matches: func(user, expected float64) bool {
			return math.Abs(user*expected-1) <= ratioTolerance
		},
	},
	{
		Misconception: Misconception{
			ID:              "order-of-operations",
			Name:            "Order of operations",
			Description:     "Operations were applied in the wrong order, e.g. adding before multiplying.",
			RemediationHint: "Apply multiplication and division before addition and subtraction, left to right.",
		},
		// Not yet detectable from the answer pair alone: a real check
		// needs the question expression to re-evaluate under the wrong
		// precedence. The entry stays in the catalog so IDs and count
		// remain stable for clients.
		matches: func(user, expected float64) bool {
			return false
		},
	},
	{
		Misconception: Misconception{
			ID:              "power-root-confusion",
			Name:            "Power/root confusion",
			Description:     "The answer is the square root or the square of the expected value.",
			RemediationHint: "Squaring and taking a square root are inverse operations — check which one the problem asks for.",
		},
		matches: func(user, expected float64) bool {
			if expected <= 0 {
				return false
			}
			return math.Abs(user-math.Sqrt(expected)) <= valueTolerance ||
				math.Abs(user-expected*expected) <= valueTolerance
		},
	},
	{
		Misconception: Misconception{
			ID:              "decimal-placement",
			Name:            "Decimal placement",
			Description:     "The answer is off by a power of ten.",
			RemediationHint: "Count decimal places carefully when multiplying or dividing by powers of ten.",
		},
		matches: func(user, expected float64) bool {
			return ratioNearAny(user, expected, decimalShifts)
		},
	},
	{
		Misconception: Misconception{
			ID:              "unit-conversion",
			Name:            "Unit conversion",
			Description:     "The answer is off by a standard unit factor (60, 3600, 1000, 100).",
			RemediationHint: "Convert all quantities to the same unit before computing, then convert the result back.",
		},
		matches: func(user, expected float64) bool {
			return ratioNearAny(user, expected, unitRatios)
		},
	},
}

// byID indexes the catalog.
var byID map[string]*entry

func init() {
	if !semver.IsValid(CatalogVersion) {
		panic(fmt.Sprintf("misconception: invalid catalog version %q", CatalogVersion))
	}
	byID = make(map[string]*entry, len(catalog))
	for i := range catalog {
		e := &catalog[i]
		if _, dup := byID[e.ID]; dup {
			panic(fmt.Sprintf("misconception: duplicate catalog ID %q", e.ID))
		}
		byID[e.ID] = e
	}
}

// ratioNearAny reports whether user/expected is close to any factor.
func ratioNearAny(user, expected float64, factors []float64) bool {
	if expected == 0 {
		return false
	}
	ratio := user / expected
	for _, f := range factors {
		if math.Abs(ratio-f) <= ratioTolerance {
			return true
		}
	}
	return false
}

// Get returns the catalog entry for id, or nil if unknown.
func Get(id string) *Misconception {
	if e, ok := byID[id]; ok {
		return &e.Misconception
	}
	return nil
}

// All returns every catalogued misconception in catalog order.
func All() []Misconception {
	out := make([]Misconception, len(catalog))
	for i, e := range catalog {
		out[i] = e.Misconception
	}
	return out
}

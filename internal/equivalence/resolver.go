package equivalence

import (
	"math"
	"strings"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/mathexpr"
)

const (
	// DefaultTolerance is the absolute tolerance for the numeric tier
	// when the caller supplies none.
	DefaultTolerance = 1e-4

	// closeBandFactor widens the tolerance for the near-miss signal.
	// A heuristic tunable, not a semantic guarantee: answers inside
	// tolerance*closeBandFactor but outside tolerance are flagged
	// IsClose so feedback can say "almost", without passing.
	closeBandFactor = 100

	// coefTolerance is the per-coefficient tolerance for the algebraic
	// tier.
	coefTolerance = 1e-4
)

// Check compares a learner answer against the expected answer.
// Tiers are tried in strict precedence, first match wins:
//
//  1. Exact: identical normalized strings. Cheapest; catches the
//     answer-typed-verbatim case before any evaluation.
//  2. Numeric: both sides evaluate to numbers. Within tolerance ⇒
//     equivalent; within the widened band ⇒ not equivalent but IsClose.
//  3. Algebraic: both sides contain a variable; monomial maps agree on
//     every key (missing keys count as zero). Most expensive, and only
//     attempted with variables on both sides to avoid false positives
//     on plain numeric mismatches.
//
// tolerance <= 0 selects DefaultTolerance.
func Check(user, expected string, tolerance float64) Verdict {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	normUser := mathexpr.Normalize(user)
	normExpected := mathexpr.Normalize(expected)

	// An empty answer matches nothing, not even an empty expected
	// string: two blanks are "no answer", not an exact match.
	if normUser == normExpected && normUser != "" {
		return Verdict{Equivalent: true, Method: MethodExact}
	}

	userVal, userOK := mathexpr.Evaluate(user)
	expectedVal, expectedOK := mathexpr.Evaluate(expected)
	if userOK && expectedOK {
		diff := math.Abs(userVal - expectedVal)
		if diff <= tolerance {
			return Verdict{
				Equivalent:    true,
				Method:        MethodNumeric,
				UserValue:     userVal,
				ExpectedValue: expectedVal,
			}
		}
		if diff <= tolerance*closeBandFactor {
			return Verdict{
				Method:        MethodNumeric,
				UserValue:     userVal,
				ExpectedValue: expectedVal,
				IsClose:       true,
			}
		}
		// Clear numeric mismatch: fall through to the algebraic tier,
		// which will decline (numeric strings carry no variables).
	}

	if containsVariable(normUser) && containsVariable(normExpected) {
		if monomialsEqual(mathexpr.ParseMonomials(user), mathexpr.ParseMonomials(expected)) {
			return Verdict{Equivalent: true, Method: MethodAlgebraic}
		}
	}

	return Verdict{Method: MethodNone}
}

// containsVariable reports whether a normalized expression has at least
// one alphabetic character — the "this looks algebraic" heuristic.
func containsVariable(norm string) bool {
	return strings.ContainsFunc(norm, func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
}

// monomialsEqual compares two monomial maps: every key present in either
// map must have coefficients within coefTolerance, missing keys count as
// zero. Two empty maps are not considered equal — that would declare two
// unparseable expressions equivalent.
func monomialsEqual(a, b map[string]float64) bool {
	if len(a) == 0 && len(b) == 0 {
		return false
	}
	for k, av := range a {
		if math.Abs(av-b[k]) > coefTolerance {
			return false
		}
	}
	for k, bv := range b {
		if _, seen := a[k]; seen {
			continue
		}
		if math.Abs(bv) > coefTolerance {
			return false
		}
	}
	return true
}

package mathexpr

import (
	"fmt"
	"regexp"
	"strconv"
)

// ConstKey is the monomial-map key for the constant term.
const ConstKey = "const"

// monomialRe matches a single signed monomial: optional numeric
// coefficient, optional single-letter variable, optional integer power.
// Examples: "3*x^2", "-x", "+2.5", "4*y".
var monomialRe = regexp.MustCompile(`^([+-]?)(\d*\.?\d*)\*?([a-z])?(?:\^(\d+))?$`)

// ParseMonomials decomposes a normalized-able expression into a map from
// term key ("const" or "<variable>^<power>") to accumulated coefficient.
// The empty expression yields an empty map, implicitly zero everywhere.
//
// Deliberately limited to sums of single-variable monomials with integer
// or decimal coefficients. Nested parentheses, variable products, and
// function terms are not understood; such terms are skipped. This keeps
// the decomposer a best-effort heuristic for linear/polynomial answers,
// not a general symbolic parser.
func ParseMonomials(raw string) map[string]float64 {
	s := Normalize(raw)
	terms := make(map[string]float64)
	if s == "" {
		return terms
	}

	for _, term := range splitSignedTerms(s) {
		key, coef, ok := parseMonomial(term)
		if !ok {
			continue
		}
		terms[key] += coef
	}
	return terms
}

// splitSignedTerms splits on +/- boundaries with the sign staying
// attached to the term that follows it: "x^2-3*x+1" → ["x^2", "-3*x", "+1"].
func splitSignedTerms(s string) []string {
	var terms []string
	start := 0
	for i, r := range s {
		if i > 0 && (r == '+' || r == '-') {
			terms = append(terms, s[start:i])
			start = i
		}
	}
	return append(terms, s[start:])
}

// parseMonomial extracts (key, coefficient) from a single signed term.
func parseMonomial(term string) (string, float64, bool) {
	m := monomialRe.FindStringSubmatch(term)
	if m == nil {
		return "", 0, false
	}
	sign, coefStr, variable, power := m[1], m[2], m[3], m[4]

	// A term must have at least a coefficient or a variable.
	if coefStr == "" && variable == "" {
		return "", 0, false
	}

	coef := 1.0
	if coefStr != "" {
		v, err := strconv.ParseFloat(coefStr, 64)
		if err != nil {
			return "", 0, false
		}
		coef = v
	}
	if sign == "-" {
		coef = -coef
	}

	if variable == "" {
		// Bare number; a trailing ^ without a variable is malformed.
		if power != "" {
			return "", 0, false
		}
		return ConstKey, coef, true
	}

	if power == "" {
		power = "1"
	}
	return fmt.Sprintf("%s^%s", variable, power), coef, true
}

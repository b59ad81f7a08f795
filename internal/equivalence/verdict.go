// Package equivalence decides whether a learner's answer matches the
// expected answer, using three comparison tiers in fixed precedence:
// exact string match, numeric evaluation within tolerance, and
// single-variable algebraic comparison.
package equivalence

// Method identifies the comparison tier that produced a verdict.
type Method string

const (
	// MethodExact: the normalized strings are identical.
	MethodExact Method = "exact"
	// MethodNumeric: both sides evaluated to numbers that were compared.
	MethodNumeric Method = "numeric"
	// MethodAlgebraic: both sides decomposed to matching monomial maps.
	MethodAlgebraic Method = "algebraic"
	// MethodNone: no tier established a relationship.
	MethodNone Method = "none"
)

// Verdict is the outcome of an equivalence check. Exactly one Method is
// active per check. UserValue and ExpectedValue are populated only for
// MethodNumeric. IsClose is meaningful only when the answers are not
// equivalent: it flags a numeric near miss inside the widened band.
type Verdict struct {
	Equivalent    bool
	Method        Method
	UserValue     float64
	ExpectedValue float64
	IsClose       bool
}

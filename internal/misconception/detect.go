package misconception

import (
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/mathexpr"
)

// Detect runs every catalogued predicate over the (user, expected)
// answer pair and returns the matches in catalog order. Intended to be
// called only after the equivalence resolver declared the answer wrong.
//
// Both answers must evaluate to numbers; otherwise no pattern can be
// established and the result is empty. Predicates run independently —
// a panic inside one (a malformed ratio, say) counts as no match and
// never blocks the remaining predicates.
func Detect(userAnswer, expectedAnswer string) []Misconception {
	user, userOK := mathexpr.Evaluate(userAnswer)
	expected, expectedOK := mathexpr.Evaluate(expectedAnswer)
	if !userOK || !expectedOK {
		return nil
	}

	var found []Misconception
	for i := range catalog {
		if safeMatch(&catalog[i], user, expected) {
			found = append(found, catalog[i].Misconception)
		}
	}
	return found
}

// safeMatch evaluates one predicate, converting panics to no-match.
func safeMatch(e *entry, user, expected float64) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return e.matches(user, expected)
}

// Dedupe returns the misconceptions with duplicate IDs removed,
// preserving first-occurrence order. Used for feedback text on
// multi-step questions; scoring sees the full list.
func Dedupe(list []Misconception) []Misconception {
	seen := make(map[string]bool, len(list))
	out := list[:0:0]
	for _, m := range list {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

package mathexpr

import "strings"

// glyphReplacer folds Unicode math glyphs to their ASCII spellings.
// Applied after lowercasing, before whitespace removal.
var glyphReplacer = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"·", "*",
	"−", "-", // U+2212 minus sign
	"–", "-", // en dash, common on mobile keyboards
	"—", "-", // em dash
	"²", "^2",
	"³", "^3",
	"√", "sqrt",
	"π", "pi",
)

// Normalize canonicalizes a raw answer string into a comparable form:
// lowercase, ASCII operators, no whitespace, explicit multiplication
// between a digit and a following letter (2x → 2*x).
//
// Normalize never fails; any input (including empty) produces a
// possibly-empty normalized string.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = glyphReplacer.Replace(s)

	// Drop all whitespace. Math answers carry no significant spacing,
	// and the exact-match tier compares normalized strings verbatim.
	s = strings.Join(strings.Fields(s), "")

	s = strings.TrimPrefix(s, "+")

	return insertImplicitMul(s)
}

// insertImplicitMul rewrites a digit immediately followed by a letter
// as an explicit multiplication: "2x" → "2*x", "3pi" → "3*pi".
func insertImplicitMul(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev rune
	for _, r := range s {
		if isDigit(prev) && isLetter(r) {
			b.WriteByte('*')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

package mathexpr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// simpleFractionRe matches a bare integer/integer fraction like "3/4" or "-1/2".
var simpleFractionRe = regexp.MustCompile(`^(-?\d+)/(-?\d+)$`)

// unitValueRe matches a number followed by a unit word of two or more
// letters ("3cm", "4.5kg"; Normalize inserts the * between digit and
// letter). A single trailing letter is a variable, not a unit: "2x"
// must carry no numeric value or the algebraic tier never runs.
var unitValueRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\*[a-z]{2,}$`)

// Evaluate attempts to reduce a raw answer string to a single float.
// It normalizes the input, then tries in order:
//
//  1. A direct integer/integer fraction (avoids float surprises for
//     the common fraction answers).
//  2. The restricted arithmetic grammar: numbers, + - * / ^, unary
//     minus, parentheses, sqrt, and the constants pi and e. Anything
//     outside that character set is never parsed.
//  3. A number with a trailing unit word ("3cm" → 3). Anything with a
//     single-letter suffix is treated as algebraic, never numeric.
//
// Returns (0, false) when no numeric interpretation exists. Callers
// must treat the false case as "not a number", not as zero.
func Evaluate(raw string) (float64, bool) {
	s := Normalize(raw)
	if s == "" {
		return 0, false
	}

	if m := simpleFractionRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}

	if inGrammarCharset(s) {
		if v, err := evalExpr(s); err == nil && isFinite(v) {
			return v, true
		}
		return 0, false
	}

	// Unit fallback: strip a trailing unit word ("3cm", "4.5kg").
	if m := unitValueRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}

	return 0, false
}

// inGrammarCharset reports whether s contains only characters of the
// restricted grammar. The only letters allowed are those spelling the
// recognized names (sqrt, pi, e); any other letter rejects the input
// before parsing is even attempted.
func inGrammarCharset(s string) bool {
	stripped := strings.NewReplacer("sqrt", "", "pi", "").Replace(s)
	for _, r := range stripped {
		switch {
		case isDigit(r):
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
		case r == '(' || r == ')' || r == '.':
		case r == 'e': // Euler's constant
		default:
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// evalExpr parses and interprets s with a small recursive-descent
// parser. Grammar (lowest to highest precedence):
//
//	expr   := term (('+'|'-') term)*
//	term   := unary (('*'|'/') unary)*
//	unary  := '-' unary | power
//	power  := atom ('^' unary)?          right-associative
//	atom   := number | 'pi' | 'e' | '(' expr ')' | 'sqrt' atom
func evalExpr(s string) (float64, error) {
	p := &parser{input: s}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	if p.peek() == '^' {
		p.pos++
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (float64, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil

	case isDigit(rune(c)) || c == '.':
		return p.parseNumber()

	case c == 's':
		if !strings.HasPrefix(p.input[p.pos:], "sqrt") {
			return 0, fmt.Errorf("unknown name at offset %d", p.pos)
		}
		p.pos += len("sqrt")
		// sqrt binds to the next atom: both sqrt(9) and sqrt9 work.
		arg, err := p.parseAtom()
		if err != nil {
			return 0, err
		}
		if arg < 0 {
			return 0, fmt.Errorf("sqrt of negative number")
		}
		return math.Sqrt(arg), nil

	case c == 'p':
		if !strings.HasPrefix(p.input[p.pos:], "pi") {
			return 0, fmt.Errorf("unknown name at offset %d", p.pos)
		}
		p.pos += len("pi")
		return math.Pi, nil

	case c == 'e':
		p.pos++
		return math.E, nil

	default:
		return 0, fmt.Errorf("unexpected input at offset %d", p.pos)
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (isDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

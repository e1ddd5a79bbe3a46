package value

import (
	"bytes"
	"strings"
)

// mathFunctions are the CSS functions whose + and - operators need
// surrounding whitespace.
var mathFunctions = map[string]bool{
	"calc":  true,
	"min":   true,
	"max":   true,
	"clamp": true,
	"round": true,
	"mod":   true,
	"rem":   true,
}

// NormalizeMath spaces the binary + and - operators inside math functions:
// "calc(100%-2rem)" → "calc(100% - 2rem)". Signs, exponents, strings and
// dashed identifiers such as var(--gap-x) are left alone.
func NormalizeMath(s string) string {
	if !strings.Contains(s, "(") {
		return s
	}

	out := make([]byte, 0, len(s)+8)
	var stack []bool // one entry per open paren: true inside a math function
	inMath := func() bool { return len(stack) > 0 && stack[len(stack)-1] }
	operand := false // the previous token can end an operand
	fn := ""         // identifier directly before the cursor

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\'' || c == '"':
			j := quoteEnd(s, i)
			out = append(out, s[i:j]...)
			i, operand, fn = j, true, ""

		case c == '(':
			stack = append(stack, mathFunctions[strings.ToLower(fn)] || (fn == "" && inMath()))
			out = append(out, c)
			i, operand, fn = i+1, false, ""

		case c == ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			out = append(out, c)
			i, operand, fn = i+1, true, ""

		case (c == '+' || c == '-') && operand && inMath():
			out = bytes.TrimRight(out, " ")
			out = append(out, ' ', c, ' ')
			i++
			for i < len(s) && s[i] == ' ' {
				i++
			}
			operand, fn = false, ""

		case isDigit(c) || c == '.' && i+1 < len(s) && isDigit(s[i+1]):
			j := numberEnd(s, i)
			out = append(out, s[i:j]...)
			i, operand, fn = j, true, ""

		case isLetter(c) || c == '_' || c == '-' && i+1 < len(s) && (isLetter(s[i+1]) || s[i+1] == '-'):
			j := i + 1
			for j < len(s) && (isLetter(s[j]) || isDigit(s[j]) || s[j] == '-' || s[j] == '_') {
				j++
			}
			out = append(out, s[i:j]...)
			i, operand, fn = j, true, s[i:j]

		case c == ' ':
			out = append(out, c)
			i, fn = i+1, ""

		default:
			out = append(out, c)
			i, operand, fn = i+1, false, ""
		}
	}
	return string(out)
}

// numberEnd returns the index just past the number starting at i, including
// an exponent and a unit: "1.5e-3", "100%", "2rem".
func numberEnd(s string, i int) int {
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i+1 < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			i = j
			for i < len(s) && isDigit(s[i]) {
				i++
			}
		}
	}
	for i < len(s) && (isLetter(s[i]) || s[i] == '%') {
		i++
	}
	return i
}

// quoteEnd returns the index just past the quoted string opening at i.
func quoteEnd(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Package value holds the small recognizers shared by every utility family:
// arbitrary values, custom-property references, negatives and fractions.
package value

import (
	"strconv"
	"strings"
)

// typeHints are the data-type prefixes accepted inside brackets: [length:2px]
var typeHints = map[string]bool{
	"any":           true,
	"color":         true,
	"length":        true,
	"percentage":    true,
	"number":        true,
	"integer":       true,
	"angle":         true,
	"url":           true,
	"image":         true,
	"position":      true,
	"size":          true,
	"line-width":    true,
	"shadow":        true,
	"family-name":   true,
	"absolute-size": true,
	"relative-size": true,
}

// Arbitrary extracts the value of a bracketed literal: "[13px]" → "13px".
// Underscores decode to spaces and the result must pass Safe.
func Arbitrary(s string) (string, bool) {
	_, v, ok := ArbitraryTyped(s)
	return v, ok
}

// ArbitraryTyped is Arbitrary that also returns an optional data-type hint:
// "[length:var(--x)]" → ("length", "var(--x)").
func ArbitraryTyped(s string) (hint, v string, ok bool) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", "", false
	}
	inner := s[1 : len(s)-1]
	if !Balanced(inner) {
		return "", "", false
	}

	if i := strings.IndexByte(inner, ':'); i > 0 && typeHints[inner[:i]] {
		hint = inner[:i]
		inner = inner[i+1:]
	}

	inner = NormalizeMath(Decode(inner))
	if strings.TrimSpace(inner) == "" || !Safe(inner) {
		return "", "", false
	}
	return hint, inner, true
}

// CustomProperty resolves the parenthesized reference form: "(--w)" → "var(--w)".
// A fallback after a comma is kept: "(--w,10px)" → "var(--w,10px)".
func CustomProperty(s string) (string, bool) {
	_, v, ok := CustomPropertyTyped(s)
	return v, ok
}

// CustomPropertyTyped is CustomProperty that also returns an optional
// data-type hint: "(length:--gap)" → ("length", "var(--gap)").
func CustomPropertyTyped(s string) (hint, v string, ok bool) {
	if len(s) < 4 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", "", false
	}
	inner := s[1 : len(s)-1]

	if i := strings.IndexByte(inner, ':'); i > 0 && typeHints[inner[:i]] {
		hint = inner[:i]
		inner = inner[i+1:]
	}

	if !strings.HasPrefix(inner, "--") || len(inner) == 2 {
		return "", "", false
	}
	name := inner
	if i := strings.IndexByte(inner, ','); i != -1 {
		name = inner[:i]
	}
	if !isIdent(name[2:]) {
		return "", "", false
	}

	inner = Decode(inner)
	if !Safe(inner) {
		return "", "", false
	}
	return hint, "var(" + inner + ")", true
}

// Explicit resolves either arbitrary syntax: a bracketed literal or a
// parenthesized custom-property reference.
func Explicit(s string) (string, bool) {
	_, v, ok := ExplicitTyped(s)
	return v, ok
}

// ExplicitTyped is Explicit with the optional data-type hint.
func ExplicitTyped(s string) (hint, v string, ok bool) {
	if hint, v, ok = ArbitraryTyped(s); ok {
		return hint, v, true
	}
	return CustomPropertyTyped(s)
}

// IsExplicit reports whether s uses one of the two arbitrary syntaxes,
// regardless of whether the content is valid.
func IsExplicit(s string) bool {
	return (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"))
}

// Negative splits a leading minus: "-left-5" → ("left-5", true).
func Negative(class string) (string, bool) {
	if len(class) > 1 && class[0] == '-' && class[1] != '-' {
		return class[1:], true
	}
	return class, false
}

// Negate returns the negated CSS value. Keywords such as "auto" or "none"
// have no negative and report false.
func Negate(v string) (string, bool) {
	switch {
	case v == "":
		return "", false
	case isLetter(v[0]) && !strings.Contains(v, "("):
		return "", false
	case v == "0" || v == "0px":
		return v, true
	case strings.HasPrefix(v, "-"):
		return v[1:], true
	case strings.HasPrefix(v, "var(") || strings.HasPrefix(v, "calc(") ||
		strings.ContainsAny(v, " ,"):
		return "calc(" + v + " * -1)", true
	default:
		return "-" + v, true
	}
}

// Fraction converts "a/b" to a percentage: "1/2" → "50%", "1/3" → "33.333333%".
func Fraction(s string) (string, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return "", false
	}
	a, err := strconv.Atoi(num)
	if err != nil || a < 0 {
		return "", false
	}
	b, err := strconv.Atoi(den)
	if err != nil || b <= 0 {
		return "", false
	}
	return FormatNumber(float64(a)*100/float64(b)) + "%", true
}

// Percentage accepts "50%" style values.
func Percentage(s string) (string, bool) {
	n, found := strings.CutSuffix(s, "%")
	if !found || !IsNumber(n) {
		return "", false
	}
	return s, true
}

// IsNumber reports whether s is a non-negative decimal number ("4", "2.5", ".5").
func IsNumber(s string) bool {
	if s == "" || s == "." {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !dot && i < len(s)-1:
			dot = true
		default:
			return false
		}
	}
	return true
}

// IsInteger reports whether s is a non-negative integer.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatNumber renders f with at most six decimals and no trailing zeros.
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Decode turns underscores into spaces; "\_" keeps a literal underscore.
// Underscores inside url(...) are left alone.
func Decode(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	urlDepth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case c == '_' && urlDepth == 0:
			b.WriteByte(' ')
		default:
			if strings.HasPrefix(s[i:], "url(") {
				urlDepth++
			} else if c == ')' && urlDepth > 0 {
				urlDepth--
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Balanced reports whether every bracket and paren in s is closed in order.
func Balanced(s string) bool {
	var stack []byte
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[', '(':
			stack = append(stack, c)
		case ']', ')':
			if len(stack) == 0 {
				return false
			}
			open := stack[len(stack)-1]
			if (c == ']' && open != '[') || (c == ')' && open != '(') {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0 && quote == 0
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' || c >= 0x80) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

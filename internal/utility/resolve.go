package utility

import (
	"strconv"
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

// spacing resolves the numeric spacing scale: "4" → "1rem", "px" → "1px".
func (t *Tables) spacing(v string) (string, bool) {
	if s, ok := t.Spacing[v]; ok {
		return s, true
	}
	if value.IsNumber(v) {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", false
		}
		return value.FormatNumber(n*t.SpacingUnit) + "rem", true
	}
	return value.Explicit(v)
}

// length resolves keywords first, then the spacing scale, then fractions
// when allowed.
func (t *Tables) length(v string, keywords map[string]string, fractions bool) (string, bool) {
	if s, ok := keywords[v]; ok {
		return s, true
	}
	if fractions {
		if s, ok := value.Fraction(v); ok {
			return s, true
		}
	}
	return t.spacing(v)
}

// signed wraps a resolver so a leading "-" negates the result.
func signed(class string, resolve func(string) (string, bool)) (string, bool) {
	rest, neg := value.Negative(class)
	v, ok := resolve(rest)
	if !ok {
		return "", false
	}
	if neg {
		return value.Negate(v)
	}
	return v, true
}

// color resolves a palette name or explicit value with an optional
// opacity suffix: "blue-500/50", "[#123456]/[.35]".
func (t *Tables) color(v string) (string, bool) {
	name, alpha, hasAlpha := splitModifier(v)

	c, ok := t.Colors[name]
	if !ok {
		hint, e, explicit := value.ExplicitTyped(name)
		if !explicit || (hint != "" && hint != "color" && hint != "any") {
			return "", false
		}
		c = e
	}
	if !hasAlpha {
		return c, true
	}

	a, ok := opacity(alpha)
	if !ok {
		return "", false
	}
	return withAlpha(c, a), true
}

// splitModifier splits the "/" suffix that sits outside any brackets.
func splitModifier(v string) (base, mod string, ok bool) {
	depth := 0
	for i := len(v) - 1; i >= 0; i-- {
		switch v[i] {
		case ']', ')':
			depth++
		case '[', '(':
			depth--
		case '/':
			if depth == 0 && i > 0 && i < len(v)-1 {
				return v[:i], v[i+1:], true
			}
		}
	}
	return v, "", false
}

// opacity parses a 0-100 step or an explicit value into a 0-1 fraction.
func opacity(s string) (float64, bool) {
	if value.IsNumber(s) {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || n > 100 {
			return 0, false
		}
		return n / 100, true
	}
	e, ok := value.Arbitrary(s)
	if !ok {
		return 0, false
	}
	if p, isPct := strings.CutSuffix(e, "%"); isPct {
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return n / 100, true
	}
	n, err := strconv.ParseFloat(e, 64)
	if err != nil || n < 0 || n > 1 {
		return 0, false
	}
	return n, true
}

// withAlpha applies an alpha channel: hex colors become rgb(), anything
// else is mixed with transparent.
func withAlpha(c string, a float64) string {
	if r, g, b, ok := parseHex(c); ok {
		return "rgb(" + strconv.Itoa(r) + " " + strconv.Itoa(g) + " " + strconv.Itoa(b) +
			" / " + value.FormatNumber(a) + ")"
	}
	return "color-mix(in oklab, " + c + " " + value.FormatNumber(a*100) + "%, transparent)"
}

// parseHex parses #rgb and #rrggbb colors.
func parseHex(c string) (r, g, b int, ok bool) {
	hex, found := strings.CutPrefix(c, "#")
	if !found {
		return 0, 0, 0, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff), true
}

// isLength reports whether an explicit value reads as a length rather than
// a color: a type hint wins, otherwise the value is inspected.
func isLength(hint, v string) bool {
	switch hint {
	case "length", "percentage", "absolute-size", "relative-size", "line-width", "number":
		return true
	case "color":
		return false
	}
	if v == "" {
		return false
	}
	if c := v[0]; c >= '0' && c <= '9' || c == '.' {
		return true
	}
	for _, fn := range []string{"calc(", "clamp(", "min(", "max("} {
		if strings.HasPrefix(v, fn) {
			return true
		}
	}
	return false
}

// integer resolves plain integers, negatives and explicit values.
func integer(class string) (string, bool) {
	return signed(class, func(v string) (string, bool) {
		if value.IsInteger(v) {
			return v, true
		}
		return value.Explicit(v)
	})
}

// scaled resolves "N" to N/100 (brightness-50 → 0.5) or an explicit value.
func scaled(v string) (string, bool) {
	if value.IsNumber(v) {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", false
		}
		return value.FormatNumber(n / 100), true
	}
	return value.Explicit(v)
}

// unit resolves "N" to N plus a unit (duration-150 → 150ms) or an explicit value.
func unit(v, suffix string) (string, bool) {
	if value.IsNumber(v) {
		return v + suffix, true
	}
	return value.Explicit(v)
}

// keywordOr resolves a keyword table entry or an explicit value.
func keywordOr(v string, keywords map[string]string) (string, bool) {
	if s, ok := keywords[v]; ok {
		return s, true
	}
	return value.Explicit(v)
}

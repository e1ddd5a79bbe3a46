package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

var borderStyles = map[string]bool{
	"solid": true, "dashed": true, "dotted": true, "double": true, "hidden": true, "none": true,
}

// borderSides maps a side suffix to the property infix for each edge.
var borderSides = map[string][]string{
	"":  {""},
	"x": {"-left", "-right"},
	"y": {"-top", "-bottom"},
	"s": {"-inline-start"},
	"e": {"-inline-end"},
	"t": {"-top"},
	"r": {"-right"},
	"b": {"-bottom"},
	"l": {"-left"},
}

// radiusCorners maps a corner suffix to radius properties.
var radiusCorners = map[string][]string{
	"":   {"border-radius"},
	"s":  {"border-start-start-radius", "border-end-start-radius"},
	"e":  {"border-start-end-radius", "border-end-end-radius"},
	"t":  {"border-top-left-radius", "border-top-right-radius"},
	"r":  {"border-top-right-radius", "border-bottom-right-radius"},
	"b":  {"border-bottom-right-radius", "border-bottom-left-radius"},
	"l":  {"border-top-left-radius", "border-bottom-left-radius"},
	"ss": {"border-start-start-radius"},
	"se": {"border-start-end-radius"},
	"ee": {"border-end-end-radius"},
	"es": {"border-end-start-radius"},
	"tl": {"border-top-left-radius"},
	"tr": {"border-top-right-radius"},
	"br": {"border-bottom-right-radius"},
	"bl": {"border-bottom-left-radius"},
}

func borderFamilies(t *Tables) []Parser {
	return []Parser{
		borderFamily(t),
		Static("border-collapse", CategoryBorders, map[string][]Declaration{
			"border-collapse": one("border-collapse", "collapse"),
			"border-separate": one("border-collapse", "separate"),
		}),
		borderSpacingFamily(t),
		roundedFamily(t),
		ringFamily(t),
		outlineFamily(t),
	}
}

// borderFamily handles width, style and color for every side:
// border, border-2, border-x-4, border-dashed, border-t-red-500.
func borderFamily(t *Tables) *Family {
	return &Family{
		Name:     "border",
		Prefixes: []string{"border"},
		Cat:      CategoryBorders,
		Fn: func(class string) ([]Declaration, bool) {
			rest, ok := strings.CutPrefix(class, "border")
			if !ok || rest != "" && rest[0] != '-' {
				return nil, false
			}
			side, v := borderSide(rest)
			edges := borderSides[side]

			if v == "" {
				if w, ok := t.BorderWidths[""]; ok {
					return borderWidth(edges, w), true
				}
				return nil, false
			}
			if borderStyles[v] {
				if side != "" {
					return edgeDecls(edges, "style", v), true
				}
				return decls("--tw-border-style", v, "border-style", v), true
			}
			if w, ok := t.BorderWidths[v]; ok {
				return borderWidth(edges, w), true
			}
			if value.IsInteger(v) {
				return borderWidth(edges, v+"px"), true
			}
			if hint, e, ok := value.ExplicitTyped(v); ok && isLength(hint, e) {
				return borderWidth(edges, e), true
			}
			c, ok := t.color(v)
			if !ok {
				return nil, false
			}
			return edgeDecls(edges, "color", c), true
		},
	}
}

// borderSide splits "-x-4" into ("x", "4") and "-2" into ("", "2").
func borderSide(rest string) (side, v string) {
	if rest == "" {
		return "", ""
	}
	rest = strings.TrimPrefix(rest, "-")
	for s := range borderSides {
		if s == "" {
			continue
		}
		if rest == s {
			return s, ""
		}
		if after, ok := strings.CutPrefix(rest, s+"-"); ok {
			return s, after
		}
	}
	return "", rest
}

func borderWidth(edges []string, w string) []Declaration {
	out := edgeDecls(edges, "style", "var(--tw-border-style, solid)")
	return append(out, edgeDecls(edges, "width", w)...)
}

func edgeDecls(edges []string, suffix, v string) []Declaration {
	out := make([]Declaration, len(edges))
	for i, e := range edges {
		out[i] = Declaration{Property: "border" + e + "-" + suffix, Value: v}
	}
	return out
}

func borderSpacingFamily(t *Tables) *Family {
	prefixes := []string{"border-spacing-", "border-spacing-x-", "border-spacing-y-"}
	return &Family{
		Name:     "border-spacing",
		Prefixes: prefixes,
		Cat:      CategoryBorders,
		Fn: func(class string) ([]Declaration, bool) {
			prefix, v, ok := cutLongest(class, prefixes)
			if !ok {
				return nil, false
			}
			s, ok := t.spacing(v)
			if !ok {
				return nil, false
			}
			var out []Declaration
			switch prefix {
			case "border-spacing-x-":
				out = one("--tw-border-spacing-x", s)
			case "border-spacing-y-":
				out = one("--tw-border-spacing-y", s)
			default:
				out = decls("--tw-border-spacing-x", s, "--tw-border-spacing-y", s)
			}
			return append(out, Declaration{
				Property: "border-spacing",
				Value:    "var(--tw-border-spacing-x, 0) var(--tw-border-spacing-y, 0)",
			}), true
		},
	}
}

func roundedFamily(t *Tables) *Family {
	return &Family{
		Name:     "border-radius",
		Prefixes: []string{"rounded"},
		Cat:      CategoryBorders,
		Fn: func(class string) ([]Declaration, bool) {
			rest, ok := strings.CutPrefix(class, "rounded")
			if !ok {
				return nil, false
			}
			if rest != "" {
				if rest, ok = strings.CutPrefix(rest, "-"); !ok {
					return nil, false
				}
			}

			corner, size := "", rest
			if c, after, found := strings.Cut(rest, "-"); found {
				if _, isCorner := radiusCorners[c]; isCorner {
					corner, size = c, after
				}
			} else if _, isCorner := radiusCorners[rest]; isCorner {
				corner, size = rest, ""
			}

			r, ok := keywordOr(size, t.Radii)
			if !ok {
				return nil, false
			}
			return each(r, radiusCorners[corner]...), true
		},
	}
}

func ringFamily(t *Tables) *Family {
	widths := map[string]string{"": "3px", "0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px"}
	return &Family{
		Name:     "ring",
		Prefixes: []string{"ring"},
		Cat:      CategoryBorders,
		Fn: func(class string) ([]Declaration, bool) {
			rest, ok := strings.CutPrefix(class, "ring")
			if !ok {
				return nil, false
			}
			if rest == "-inset" {
				return one("--tw-ring-inset", "inset"), true
			}
			if rest != "" {
				if rest, ok = strings.CutPrefix(rest, "-"); !ok {
					return nil, false
				}
			}

			w, isWidth := widths[rest]
			if !isWidth {
				if value.IsInteger(rest) {
					w, isWidth = rest+"px", true
				} else if hint, e, ok := value.ExplicitTyped(rest); ok && isLength(hint, e) {
					w, isWidth = e, true
				}
			}
			if isWidth {
				return decls(
					"--tw-ring-shadow", "var(--tw-ring-inset,) 0 0 0 "+w+" var(--tw-ring-color, rgb(59 130 246 / 0.5))",
					"box-shadow", "var(--tw-ring-shadow), var(--tw-shadow, 0 0 #0000)",
				), true
			}

			c, ok := t.color(rest)
			return one("--tw-ring-color", c), ok
		},
	}
}

func outlineFamily(t *Tables) *Family {
	styles := map[string]bool{"dashed": true, "dotted": true, "double": true}
	return &Family{
		Name:     "outline",
		Prefixes: []string{"outline"},
		Cat:      CategoryBorders,
		Fn: func(class string) ([]Declaration, bool) {
			rest, ok := strings.CutPrefix(class, "outline")
			if !ok {
				return nil, false
			}
			switch rest {
			case "":
				return one("outline-style", "solid"), true
			case "-none":
				return decls("outline", "2px solid transparent", "outline-offset", "2px"), true
			}
			if rest, ok = strings.CutPrefix(rest, "-"); !ok {
				return nil, false
			}
			if styles[rest] {
				return one("outline-style", rest), true
			}
			if off, ok := strings.CutPrefix(rest, "offset-"); ok {
				if value.IsInteger(off) {
					return one("outline-offset", off+"px"), true
				}
				e, ok := value.Explicit(off)
				return one("outline-offset", e), ok
			}
			if value.IsInteger(rest) {
				return one("outline-width", rest+"px"), true
			}
			if hint, e, ok := value.ExplicitTyped(rest); ok && isLength(hint, e) {
				return one("outline-width", e), true
			}
			c, ok := t.color(rest)
			return one("outline-color", c), ok
		},
	}
}

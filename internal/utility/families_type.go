package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

func typographyFamilies(t *Tables) []Parser {
	return []Parser{
		// text- is shared: alignment and wrapping claim their keywords first,
		// then sizes, then colors take whatever is left.
		Static("text-layout", CategoryTypography, map[string][]Declaration{
			"text-left":     one("text-align", "left"),
			"text-center":   one("text-align", "center"),
			"text-right":    one("text-align", "right"),
			"text-justify":  one("text-align", "justify"),
			"text-start":    one("text-align", "start"),
			"text-end":      one("text-align", "end"),
			"text-wrap":     one("text-wrap", "wrap"),
			"text-nowrap":   one("text-wrap", "nowrap"),
			"text-balance":  one("text-wrap", "balance"),
			"text-pretty":   one("text-wrap", "pretty"),
			"text-ellipsis": one("text-overflow", "ellipsis"),
			"text-clip":     one("text-overflow", "clip"),
			"truncate":      decls("overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"),
		}),
		withPriority(fontSizeFamily(t), 20),
		textColorFamily(t),
		withPriority(fontWeightFamily(t), 10),
		&Family{
			Name:     "font-family",
			Prefixes: []string{"font-"},
			Cat:      CategoryTypography,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "font-")
				if !ok {
					return nil, false
				}
				f, ok := keywordOr(v, t.FontFamilies)
				return one("font-family", f), ok
			},
		},
		&Family{
			Name:     "line-height",
			Prefixes: []string{"leading-"},
			Cat:      CategoryTypography,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "leading-")
				if !ok {
					return nil, false
				}
				lh, ok := t.length(v, t.LineHeights, false)
				return one("line-height", lh), ok
			},
		},
		&Family{
			Name:     "letter-spacing",
			Prefixes: []string{"tracking-"},
			Cat:      CategoryTypography,
			Fn: func(class string) ([]Declaration, bool) {
				ls, ok := signed(class, func(v string) (string, bool) {
					key, ok := strings.CutPrefix(v, "tracking-")
					if !ok {
						return "", false
					}
					return keywordOr(key, t.LetterSpacing)
				})
				return one("letter-spacing", ls), ok
			},
		},
		Static("text-decoration", CategoryTypography, map[string][]Declaration{
			"underline":    one("text-decoration-line", "underline"),
			"overline":     one("text-decoration-line", "overline"),
			"line-through": one("text-decoration-line", "line-through"),
			"no-underline": one("text-decoration-line", "none"),
		}),
		decorationFamily(t),
		Static("text-transform", CategoryTypography, map[string][]Declaration{
			"uppercase":   one("text-transform", "uppercase"),
			"lowercase":   one("text-transform", "lowercase"),
			"capitalize":  one("text-transform", "capitalize"),
			"normal-case": one("text-transform", "none"),
			"italic":      one("font-style", "italic"),
			"not-italic":  one("font-style", "normal"),
			"antialiased": decls(
				"-webkit-font-smoothing", "antialiased",
				"-moz-osx-font-smoothing", "grayscale",
			),
			"subpixel-antialiased": decls(
				"-webkit-font-smoothing", "auto",
				"-moz-osx-font-smoothing", "auto",
			),
		}),
		Keyword("white-space", CategoryTypography, "whitespace-", "white-space", map[string]string{
			"normal":       "normal",
			"nowrap":       "nowrap",
			"pre":          "pre",
			"pre-line":     "pre-line",
			"pre-wrap":     "pre-wrap",
			"break-spaces": "break-spaces",
		}),
		Static("word-break", CategoryTypography, map[string][]Declaration{
			"break-normal": decls("overflow-wrap", "normal", "word-break", "normal"),
			"break-words":  one("overflow-wrap", "break-word"),
			"break-all":    one("word-break", "break-all"),
			"break-keep":   one("word-break", "keep-all"),
		}),
		&Family{
			Name:     "list-style",
			Prefixes: []string{"list-"},
			Cat:      CategoryTypography,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "list-")
				if !ok {
					return nil, false
				}
				switch v {
				case "inside", "outside":
					return one("list-style-position", v), true
				}
				s, ok := keywordOr(v, map[string]string{"none": "none", "disc": "disc", "decimal": "decimal"})
				return one("list-style-type", s), ok
			},
		},
		Keyword("vertical-align", CategoryTypography, "align-", "vertical-align", map[string]string{
			"baseline":    "baseline",
			"top":         "top",
			"middle":      "middle",
			"bottom":      "bottom",
			"text-top":    "text-top",
			"text-bottom": "text-bottom",
			"sub":         "sub",
			"super":       "super",
		}),
		&Family{
			Name:     "content",
			Prefixes: []string{"content-"},
			Cat:      CategoryTypography,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "content-")
				if !ok {
					return nil, false
				}
				c, ok := keywordOr(v, map[string]string{"none": "none"})
				return one("content", c), ok
			},
		},
	}
}

// fontSizeFamily resolves text-lg, text-lg/7, text-sm/[18px] and
// length-like explicit values.
func fontSizeFamily(t *Tables) *Family {
	return &Family{
		Name:     "font-size",
		Prefixes: []string{"text-"},
		Cat:      CategoryTypography,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "text-")
			if !ok {
				return nil, false
			}
			size, lh, hasLH := splitModifier(v)

			var out []Declaration
			if fs, ok := t.FontSizes[size]; ok {
				out = decls("font-size", fs.Size, "line-height", fs.LineHeight)
			} else {
				hint, e, ok := value.ExplicitTyped(size)
				if !ok || !isLength(hint, e) {
					return nil, false
				}
				out = one("font-size", e)
			}

			if hasLH {
				leading, ok := t.length(lh, t.LineHeights, false)
				if !ok {
					return nil, false
				}
				out = append(out[:1], Declaration{Property: "line-height", Value: leading})
			}
			return out, true
		},
	}
}

func textColorFamily(t *Tables) *Family {
	return &Family{
		Name:     "text-color",
		Prefixes: []string{"text-"},
		Cat:      CategoryTypography,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "text-")
			if !ok {
				return nil, false
			}
			c, ok := t.color(v)
			return one("color", c), ok
		},
	}
}

func fontWeightFamily(t *Tables) *Family {
	return &Family{
		Name:     "font-weight",
		Prefixes: []string{"font-"},
		Cat:      CategoryTypography,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "font-")
			if !ok {
				return nil, false
			}
			if w, ok := t.FontWeights[v]; ok {
				return one("font-weight", w), true
			}
			hint, e, ok := value.ExplicitTyped(v)
			if !ok || !(hint == "number" || hint == "" && value.IsInteger(e)) {
				return nil, false
			}
			return one("font-weight", e), true
		},
	}
}

// decorationFamily covers decoration color, style and thickness.
func decorationFamily(t *Tables) *Family {
	styles := map[string]bool{"solid": true, "double": true, "dotted": true, "dashed": true, "wavy": true}
	thickness := map[string]string{"auto": "auto", "from-font": "from-font"}
	return &Family{
		Name:     "text-decoration-style",
		Prefixes: []string{"decoration-"},
		Cat:      CategoryTypography,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "decoration-")
			if !ok {
				return nil, false
			}
			if styles[v] {
				return one("text-decoration-style", v), true
			}
			if th, ok := thickness[v]; ok {
				return one("text-decoration-thickness", th), true
			}
			if value.IsInteger(v) {
				return one("text-decoration-thickness", v+"px"), true
			}
			if hint, e, ok := value.ExplicitTyped(v); ok && isLength(hint, e) {
				return one("text-decoration-thickness", e), true
			}
			c, ok := t.color(v)
			return one("text-decoration-color", c), ok
		},
	}
}

package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

const (
	transitionTiming   = "cubic-bezier(0.4, 0, 0.2, 1)"
	transitionDuration = "150ms"
)

func motionFamilies(t *Tables) []Parser {
	return []Parser{
		scaleFamily(),
		sided("rotate", CategoryTransforms, true, map[string][]string{
			"rotate-": {"rotate"},
		}, func(v string) (string, bool) { return unit(v, "deg") }),
		translateFamily(t),
		&Family{
			Name:     "skew",
			Prefixes: []string{"skew-x-", "skew-y-"},
			Cat:      CategoryTransforms,
			Fn: func(class string) ([]Declaration, bool) {
				rest, neg := value.Negative(class)
				prefix, v, ok := cutLongest(rest, []string{"skew-x-", "skew-y-"})
				if !ok {
					return nil, false
				}
				d, ok := unit(v, "deg")
				if !ok {
					return nil, false
				}
				if neg {
					if d, ok = value.Negate(d); !ok {
						return nil, false
					}
				}
				axis := strings.ToUpper(prefix[5:6])
				return decls(
					"--tw-skew-"+prefix[5:6], "skew"+axis+"("+d+")",
					"transform", "var(--tw-skew-x,) var(--tw-skew-y,)",
				), true
			},
		},
		&Family{
			Name:     "transform-origin",
			Prefixes: []string{"origin-"},
			Cat:      CategoryTransforms,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "origin-")
				if !ok {
					return nil, false
				}
				o, ok := keywordOr(v, map[string]string{
					"center":       "center",
					"top":          "top",
					"top-right":    "top right",
					"right":        "right",
					"bottom-right": "bottom right",
					"bottom":       "bottom",
					"bottom-left":  "bottom left",
					"left":         "left",
					"top-left":     "top left",
				})
				return one("transform-origin", o), ok
			},
		},
		transitionFamily(),
		sided("transition-duration", CategoryTransitions, false, map[string][]string{
			"duration-": {"transition-duration"},
		}, func(v string) (string, bool) { return unit(v, "ms") }),
		sided("transition-delay", CategoryTransitions, false, map[string][]string{
			"delay-": {"transition-delay"},
		}, func(v string) (string, bool) { return unit(v, "ms") }),
		sided("transition-timing-function", CategoryTransitions, false, map[string][]string{
			"ease-": {"transition-timing-function"},
		}, func(v string) (string, bool) { return keywordOr(v, t.Easings) }),
		sided("animation", CategoryTransitions, false, map[string][]string{
			"animate-": {"animation"},
		}, func(v string) (string, bool) { return keywordOr(v, t.Animations) }),
	}
}

// scaleFamily emits percentage scales: scale-50 → 50%.
func scaleFamily() *Family {
	prefixes := []string{"scale-", "scale-x-", "scale-y-"}
	return &Family{
		Name:     "scale",
		Prefixes: prefixes,
		Cat:      CategoryTransforms,
		Fn: func(class string) ([]Declaration, bool) {
			rest, neg := value.Negative(class)
			prefix, v, ok := cutLongest(rest, prefixes)
			if !ok {
				return nil, false
			}
			s, ok := unit(v, "%")
			if !ok {
				return nil, false
			}
			if neg {
				if s, ok = value.Negate(s); !ok {
					return nil, false
				}
			}

			var out []Declaration
			switch prefix {
			case "scale-x-":
				out = one("--tw-scale-x", s)
			case "scale-y-":
				out = one("--tw-scale-y", s)
			default:
				out = decls("--tw-scale-x", s, "--tw-scale-y", s)
			}
			return append(out, Declaration{
				Property: "scale",
				Value:    "var(--tw-scale-x, 100%) var(--tw-scale-y, 100%)",
			}), true
		},
	}
}

func translateFamily(t *Tables) *Family {
	prefixes := []string{"translate-x-", "translate-y-"}
	keywords := map[string]string{"full": "100%"}
	return &Family{
		Name:     "translate",
		Prefixes: prefixes,
		Cat:      CategoryTransforms,
		Fn: func(class string) ([]Declaration, bool) {
			rest, neg := value.Negative(class)
			prefix, v, ok := cutLongest(rest, prefixes)
			if !ok {
				return nil, false
			}
			s, ok := t.length(v, keywords, true)
			if !ok {
				return nil, false
			}
			if neg {
				if s, ok = value.Negate(s); !ok {
					return nil, false
				}
			}
			return decls(
				"--tw-translate-"+prefix[10:11], s,
				"translate", "var(--tw-translate-x, 0) var(--tw-translate-y, 0)",
			), true
		},
	}
}

func transitionFamily() *Family {
	properties := map[string]string{
		"":          "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, translate, scale, rotate, filter, backdrop-filter",
		"all":       "all",
		"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
		"opacity":   "opacity",
		"shadow":    "box-shadow",
		"transform": "transform, translate, scale, rotate",
	}
	return &Family{
		Name:     "transition",
		Prefixes: []string{"transition"},
		Cat:      CategoryTransitions,
		Fn: func(class string) ([]Declaration, bool) {
			rest, ok := strings.CutPrefix(class, "transition")
			if !ok {
				return nil, false
			}
			if rest == "-none" {
				return one("transition-property", "none"), true
			}
			if rest != "" {
				if rest, ok = strings.CutPrefix(rest, "-"); !ok {
					return nil, false
				}
			}
			p, ok := keywordOr(rest, properties)
			if !ok {
				return nil, false
			}
			return decls(
				"transition-property", p,
				"transition-timing-function", transitionTiming,
				"transition-duration", transitionDuration,
			), true
		},
	}
}

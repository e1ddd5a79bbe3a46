package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

// filterChain lists every filter slot so utilities compose on one element.
const filterChain = "var(--tw-blur,) var(--tw-brightness,) var(--tw-contrast,) var(--tw-grayscale,) " +
	"var(--tw-hue-rotate,) var(--tw-invert,) var(--tw-saturate,) var(--tw-sepia,) var(--tw-drop-shadow,)"

const backdropChain = "var(--tw-backdrop-blur,) var(--tw-backdrop-brightness,) var(--tw-backdrop-contrast,) " +
	"var(--tw-backdrop-grayscale,) var(--tw-backdrop-hue-rotate,) var(--tw-backdrop-invert,) " +
	"var(--tw-backdrop-opacity,) var(--tw-backdrop-saturate,) var(--tw-backdrop-sepia,)"

func effectFamilies(t *Tables) []Parser {
	return []Parser{
		&Family{
			Name:     "box-shadow",
			Prefixes: []string{"shadow"},
			Cat:      CategoryEffects,
			Fn: func(class string) ([]Declaration, bool) {
				rest, ok := strings.CutPrefix(class, "shadow")
				if !ok {
					return nil, false
				}
				if rest != "" {
					if rest, ok = strings.CutPrefix(rest, "-"); !ok {
						return nil, false
					}
				}
				s, ok := keywordOr(rest, t.Shadows)
				if !ok {
					return nil, false
				}
				return decls(
					"--tw-shadow", s,
					"box-shadow", "var(--tw-ring-shadow, 0 0 #0000), var(--tw-shadow)",
				), true
			},
		},
		Keyword("mix-blend-mode", CategoryEffects, "mix-blend-", "mix-blend-mode", blendModes()),
		Keyword("background-blend-mode", CategoryBackgrounds, "bg-blend-", "background-blend-mode", blendModes()),
		filterFamily(t, "", "filter", filterChain),
		filterFamily(t, "backdrop-", "backdrop-filter", backdropChain),
	}
}

func blendModes() map[string]string {
	modes := map[string]string{}
	for _, m := range []string{
		"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
		"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity",
	} {
		modes[m] = m
	}
	modes["plus-darker"] = "plus-darker"
	modes["plus-lighter"] = "plus-lighter"
	return modes
}

// filterFamily builds the filter utilities; backdrop variants share the
// grammar under a "backdrop-" prefix.
func filterFamily(t *Tables, prefix, property, chain string) *Family {
	names := []string{"blur", "brightness", "contrast", "grayscale", "hue-rotate", "invert", "saturate", "sepia"}
	if prefix == "" {
		names = append(names, "drop-shadow")
	} else {
		names = append(names, "opacity")
	}
	prefixes := make([]string, len(names))
	for i, n := range names {
		prefixes[i] = prefix + n
	}

	return &Family{
		Name:     property,
		Prefixes: append([]string{prefix + "filter-none"}, prefixes...),
		Cat:      CategoryFilters,
		Fn: func(class string) ([]Declaration, bool) {
			if class == prefix+"filter-none" {
				return one(property, "none"), true
			}
			rest, neg := value.Negative(class)
			name, v, ok := cutLongest(rest, prefixes)
			if !ok {
				return nil, false
			}
			name = strings.TrimPrefix(name, prefix)
			if v != "" {
				if v, ok = strings.CutPrefix(v, "-"); !ok {
					return nil, false
				}
			}
			if neg && name != "hue-rotate" {
				return nil, false
			}

			fn, ok := filterValue(t, name, v, neg)
			if !ok {
				return nil, false
			}
			return decls("--tw-"+prefix+name, fn, property, chain), true
		},
	}
}

// filterValue renders one filter function: blur-sm → blur(4px).
func filterValue(t *Tables, name, v string, neg bool) (string, bool) {
	switch name {
	case "blur":
		b, ok := keywordOr(v, t.Blurs)
		return "blur(" + b + ")", ok
	case "drop-shadow":
		d, ok := t.DropShadows[v]
		if ok {
			return d, true
		}
		e, ok := value.Explicit(v)
		return "drop-shadow(" + e + ")", ok
	case "grayscale", "invert", "sepia":
		if v == "" {
			return name + "(100%)", true
		}
		p, ok := unit(v, "%")
		return name + "(" + p + ")", ok
	case "hue-rotate":
		d, ok := unit(v, "deg")
		if ok && neg {
			d, ok = value.Negate(d)
		}
		return "hue-rotate(" + d + ")", ok
	default:
		// brightness, contrast, saturate and backdrop opacity take N/100
		if v == "" {
			return "", false
		}
		s, ok := scaled(v)
		return name + "(" + s + ")", ok
	}
}

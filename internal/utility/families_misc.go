package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

func interactivityFamilies() []Parser {
	cursors := map[string]string{}
	for _, c := range []string{
		"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "none",
		"context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy",
		"no-drop", "grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize",
		"e-resize", "s-resize", "w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize",
		"ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
	} {
		cursors[c] = c
	}

	return []Parser{
		sided("cursor", CategoryInteractivity, false, map[string][]string{
			"cursor-": {"cursor"},
		}, func(v string) (string, bool) { return keywordOr(v, cursors) }),
		Keyword("pointer-events", CategoryInteractivity, "pointer-events-", "pointer-events", map[string]string{
			"none": "none",
			"auto": "auto",
		}),
		Keyword("user-select", CategoryInteractivity, "select-", "user-select", map[string]string{
			"none": "none",
			"text": "text",
			"all":  "all",
			"auto": "auto",
		}),
		Static("resize", CategoryInteractivity, map[string][]Declaration{
			"resize":      one("resize", "both"),
			"resize-none": one("resize", "none"),
			"resize-x":    one("resize", "horizontal"),
			"resize-y":    one("resize", "vertical"),
		}),
		Static("scroll-behavior", CategoryInteractivity, map[string][]Declaration{
			"scroll-auto":   one("scroll-behavior", "auto"),
			"scroll-smooth": one("scroll-behavior", "smooth"),
		}),
		Static("appearance", CategoryInteractivity, map[string][]Declaration{
			"appearance-none": one("appearance", "none"),
			"appearance-auto": one("appearance", "auto"),
		}),
		Keyword("will-change", CategoryInteractivity, "will-change-", "will-change", map[string]string{
			"auto":      "auto",
			"scroll":    "scroll-position",
			"contents":  "contents",
			"transform": "transform",
		}),
	}
}

// markerFamily owns the classes that only exist to be referenced by group-*
// and peer-* variants. They compile to nothing.
func markerFamily() *Family {
	return Static("marker", CategoryInteractivity, map[string][]Declaration{
		"group": nil,
		"peer":  nil,
	})
}

// arbitraryPropertyFamily handles "[mask-type:luminance]" and "[--brand:#f00]".
func arbitraryPropertyFamily() *Family {
	return &Family{
		Name:     "arbitrary-property",
		Prefixes: []string{"["},
		Cat:      CategoryArbitrary,
		Fn: func(class string) ([]Declaration, bool) {
			if len(class) < 5 || class[0] != '[' || class[len(class)-1] != ']' {
				return nil, false
			}
			inner := class[1 : len(class)-1]
			prop, raw, found := strings.Cut(inner, ":")
			if !found || !isPropertyName(prop) || !value.Balanced(raw) {
				return nil, false
			}
			v := value.Decode(raw)
			if strings.TrimSpace(v) == "" || !value.Safe(v) {
				return nil, false
			}
			return one(prop, v), true
		},
	}
}

// isPropertyName accepts lowercase property names, vendor prefixes and
// custom properties.
func isPropertyName(s string) bool {
	if s == "" || s == "-" || s == "--" {
		return false
	}
	custom := strings.HasPrefix(s, "--")
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c == '-':
		case custom && (c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}

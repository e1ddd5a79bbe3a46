package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

func layoutFamilies(t *Tables) []Parser {
	return []Parser{
		Static("display", CategoryLayout, map[string][]Declaration{
			"block":              one("display", "block"),
			"inline-block":       one("display", "inline-block"),
			"inline":             one("display", "inline"),
			"flex":               one("display", "flex"),
			"inline-flex":        one("display", "inline-flex"),
			"grid":               one("display", "grid"),
			"inline-grid":        one("display", "inline-grid"),
			"table":              one("display", "table"),
			"inline-table":       one("display", "inline-table"),
			"table-caption":      one("display", "table-caption"),
			"table-cell":         one("display", "table-cell"),
			"table-column":       one("display", "table-column"),
			"table-column-group": one("display", "table-column-group"),
			"table-footer-group": one("display", "table-footer-group"),
			"table-header-group": one("display", "table-header-group"),
			"table-row-group":    one("display", "table-row-group"),
			"table-row":          one("display", "table-row"),
			"flow-root":          one("display", "flow-root"),
			"contents":           one("display", "contents"),
			"list-item":          one("display", "list-item"),
			"hidden":             one("display", "none"),
		}),
		Static("position", CategoryLayout, map[string][]Declaration{
			"static":   one("position", "static"),
			"fixed":    one("position", "fixed"),
			"absolute": one("position", "absolute"),
			"relative": one("position", "relative"),
			"sticky":   one("position", "sticky"),
		}),
		Static("visibility", CategoryLayout, map[string][]Declaration{
			"visible":   one("visibility", "visible"),
			"invisible": one("visibility", "hidden"),
			"collapse":  one("visibility", "collapse"),
		}),
		Static("isolation", CategoryLayout, map[string][]Declaration{
			"isolate":        one("isolation", "isolate"),
			"isolation-auto": one("isolation", "auto"),
		}),
		Static("box-sizing", CategoryLayout, map[string][]Declaration{
			"box-border":  one("box-sizing", "border-box"),
			"box-content": one("box-sizing", "content-box"),
		}),
		Keyword("float", CategoryLayout, "float-", "float", map[string]string{
			"start": "inline-start",
			"end":   "inline-end",
			"right": "right",
			"left":  "left",
			"none":  "none",
		}),
		Keyword("clear", CategoryLayout, "clear-", "clear", map[string]string{
			"start": "inline-start",
			"end":   "inline-end",
			"left":  "left",
			"right": "right",
			"both":  "both",
			"none":  "none",
		}),
		overflowFamily(),
		objectFamily(),
		&Family{
			Name:     "z-index",
			Prefixes: []string{"z-"},
			Cat:      CategoryLayout,
			Fn: func(class string) ([]Declaration, bool) {
				if class == "z-auto" {
					return one("z-index", "auto"), true
				}
				rest, neg := value.Negative(class)
				v, ok := strings.CutPrefix(rest, "z-")
				if !ok {
					return nil, false
				}
				if neg {
					v = "-" + v
				}
				z, ok := integer(v)
				return one("z-index", z), ok
			},
		},
		sided("inset", CategoryLayout, true, map[string][]string{
			"inset-":   {"inset"},
			"inset-x-": {"left", "right"},
			"inset-y-": {"top", "bottom"},
			"start-":   {"inset-inline-start"},
			"end-":     {"inset-inline-end"},
			"top-":     {"top"},
			"right-":   {"right"},
			"bottom-":  {"bottom"},
			"left-":    {"left"},
		}, func(v string) (string, bool) {
			return t.length(v, map[string]string{"auto": "auto", "full": "100%"}, true)
		}),
		&Family{
			Name:     "aspect-ratio",
			Prefixes: []string{"aspect-"},
			Cat:      CategoryLayout,
			Fn: func(class string) ([]Declaration, bool) {
				v, ok := strings.CutPrefix(class, "aspect-")
				if !ok {
					return nil, false
				}
				if r, ok := t.AspectRatios[v]; ok {
					return one("aspect-ratio", r), true
				}
				if num, den, found := strings.Cut(v, "/"); found && value.IsInteger(num) && value.IsInteger(den) {
					return one("aspect-ratio", num+" / "+den), true
				}
				r, ok := value.Explicit(v)
				return one("aspect-ratio", r), ok
			},
		},
	}
}

func overflowFamily() *Family {
	modes := map[string]bool{"auto": true, "hidden": true, "clip": true, "visible": true, "scroll": true}
	props := map[string]string{
		"overflow-":   "overflow",
		"overflow-x-": "overflow-x",
		"overflow-y-": "overflow-y",
	}
	return &Family{
		Name:     "overflow",
		Prefixes: []string{"overflow-", "overflow-x-", "overflow-y-"},
		Cat:      CategoryLayout,
		Fn: func(class string) ([]Declaration, bool) {
			prefix, mode, ok := cutLongest(class, []string{"overflow-", "overflow-x-", "overflow-y-"})
			if !ok || !modes[mode] {
				return nil, false
			}
			return one(props[prefix], mode), true
		},
	}
}

func objectFamily() *Family {
	fits := map[string]bool{"contain": true, "cover": true, "fill": true, "none": true, "scale-down": true}
	positions := map[string]string{
		"bottom":       "bottom",
		"center":       "center",
		"left":         "left",
		"left-bottom":  "left bottom",
		"left-top":     "left top",
		"right":        "right",
		"right-bottom": "right bottom",
		"right-top":    "right top",
		"top":          "top",
	}
	return &Family{
		Name:     "object",
		Prefixes: []string{"object-"},
		Cat:      CategoryLayout,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "object-")
			if !ok {
				return nil, false
			}
			if fits[v] {
				return one("object-fit", v), true
			}
			pos, ok := keywordOr(v, positions)
			return one("object-position", pos), ok
		},
	}
}

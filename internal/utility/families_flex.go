package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

var alignments = map[string]string{
	"normal":   "normal",
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"between":  "space-between",
	"around":   "space-around",
	"evenly":   "space-evenly",
	"stretch":  "stretch",
	"baseline": "baseline",
}

var itemAlignments = map[string]string{
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"baseline": "baseline",
	"stretch":  "stretch",
}

var placements = map[string]string{
	"auto":    "auto",
	"start":   "start",
	"end":     "end",
	"center":  "center",
	"stretch": "stretch",
}

func flexFamilies(t *Tables) []Parser {
	return []Parser{
		flexFamily(),
		&Family{
			Name:     "flex-grow",
			Prefixes: []string{"grow", "shrink"},
			Cat:      CategoryFlexGrid,
			Fn: func(class string) ([]Declaration, bool) {
				prefix, rest, ok := cutLongest(class, []string{"grow", "shrink"})
				if !ok {
					return nil, false
				}
				prop := "flex-" + prefix
				if rest == "" {
					return one(prop, "1"), true
				}
				v, ok := strings.CutPrefix(rest, "-")
				if !ok {
					return nil, false
				}
				n, ok := integer(v)
				return one(prop, n), ok
			},
		},
		sided("flex-basis", CategoryFlexGrid, false, map[string][]string{
			"basis-": {"flex-basis"},
		}, func(v string) (string, bool) {
			return t.length(v, map[string]string{"auto": "auto", "full": "100%"}, true)
		}),
		Keyword("justify-content", CategoryFlexGrid, "justify-", "justify-content", alignments),
		Keyword("justify-items", CategoryFlexGrid, "justify-items-", "justify-items", placements),
		Keyword("justify-self", CategoryFlexGrid, "justify-self-", "justify-self", placements),
		Keyword("align-items", CategoryFlexGrid, "items-", "align-items", itemAlignments),
		Keyword("align-self", CategoryFlexGrid, "self-", "align-self", withKeys(itemAlignments, map[string]string{"auto": "auto"})),
		withPriority(Keyword("align-content", CategoryFlexGrid, "content-", "align-content", alignments), 10),
		Keyword("place-content", CategoryFlexGrid, "place-content-", "place-content", withKeys(alignments, map[string]string{
			"start": "start",
			"end":   "end",
		})),
		Keyword("place-items", CategoryFlexGrid, "place-items-", "place-items", placements),
		Keyword("place-self", CategoryFlexGrid, "place-self-", "place-self", placements),
		&Family{
			Name:     "order",
			Prefixes: []string{"order-"},
			Cat:      CategoryFlexGrid,
			Fn: func(class string) ([]Declaration, bool) {
				switch class {
				case "order-first":
					return one("order", "-9999"), true
				case "order-last":
					return one("order", "9999"), true
				case "order-none":
					return one("order", "0"), true
				}
				rest, neg := value.Negative(class)
				v, ok := strings.CutPrefix(rest, "order-")
				if !ok {
					return nil, false
				}
				if neg {
					v = "-" + v
				}
				n, ok := integer(v)
				return one("order", n), ok
			},
		},
		gridTemplateFamily("grid-cols-", "grid-template-columns"),
		gridTemplateFamily("grid-rows-", "grid-template-rows"),
		gridLineFamily("col-", "grid-column"),
		gridLineFamily("row-", "grid-row"),
		Keyword("grid-flow", CategoryFlexGrid, "grid-flow-", "grid-auto-flow", map[string]string{
			"row":       "row",
			"col":       "column",
			"dense":     "dense",
			"row-dense": "row dense",
			"col-dense": "column dense",
		}),
		gridAutoFamily("auto-cols-", "grid-auto-columns"),
		gridAutoFamily("auto-rows-", "grid-auto-rows"),
	}
}

func flexFamily() *Family {
	directions := map[string]string{
		"row":         "row",
		"row-reverse": "row-reverse",
		"col":         "column",
		"col-reverse": "column-reverse",
	}
	wraps := map[string]bool{"wrap": true, "wrap-reverse": true, "nowrap": true}
	shorthands := map[string]string{
		"1":       "1 1 0%",
		"auto":    "1 1 auto",
		"initial": "0 1 auto",
		"none":    "none",
	}
	return &Family{
		Name:     "flex",
		Prefixes: []string{"flex-"},
		Cat:      CategoryFlexGrid,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, "flex-")
			if !ok {
				return nil, false
			}
			if d, ok := directions[v]; ok {
				return one("flex-direction", d), true
			}
			if wraps[v] {
				return one("flex-wrap", v), true
			}
			if s, ok := shorthands[v]; ok {
				return one("flex", s), true
			}
			if num, den, found := strings.Cut(v, "/"); found && value.IsInteger(num) && value.IsInteger(den) {
				pct, ok := value.Fraction(v)
				return one("flex", pct), ok
			}
			if value.IsInteger(v) {
				return one("flex", v), true
			}
			s, ok := value.Explicit(v)
			return one("flex", s), ok
		},
	}
}

func gridTemplateFamily(prefix, property string) *Family {
	return &Family{
		Name:     property,
		Prefixes: []string{prefix},
		Cat:      CategoryFlexGrid,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, prefix)
			if !ok {
				return nil, false
			}
			switch {
			case v == "none" || v == "subgrid":
				return one(property, v), true
			case value.IsInteger(v) && v != "0":
				return one(property, "repeat("+v+", minmax(0, 1fr))"), true
			}
			s, ok := value.Explicit(v)
			return one(property, s), ok
		},
	}
}

// gridLineFamily covers span, start, end and auto: col-span-2, row-start-1.
func gridLineFamily(prefix, property string) *Family {
	return &Family{
		Name:     property,
		Prefixes: []string{prefix + "span-", prefix + "start-", prefix + "end-", prefix + "auto"},
		Cat:      CategoryFlexGrid,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, prefix)
			if !ok {
				return nil, false
			}
			if v == "auto" {
				return one(property, "auto"), true
			}
			if span, ok := strings.CutPrefix(v, "span-"); ok {
				switch {
				case span == "full":
					return one(property, "1 / -1"), true
				case value.IsInteger(span) && span != "0":
					return one(property, "span "+span+" / span "+span), true
				}
				s, ok := value.Explicit(span)
				return one(property, "span "+s+" / span "+s), ok
			}
			for _, edge := range []string{"start", "end"} {
				if n, ok := strings.CutPrefix(v, edge+"-"); ok {
					if n == "auto" {
						return one(property+"-"+edge, "auto"), true
					}
					line, ok := integer(n)
					return one(property+"-"+edge, line), ok
				}
			}
			return nil, false
		},
	}
}

func gridAutoFamily(prefix, property string) *Family {
	sizes := map[string]string{
		"auto": "auto",
		"min":  "min-content",
		"max":  "max-content",
		"fr":   "minmax(0, 1fr)",
	}
	return &Family{
		Name:     property,
		Prefixes: []string{prefix},
		Cat:      CategoryFlexGrid,
		Fn: func(class string) ([]Declaration, bool) {
			v, ok := strings.CutPrefix(class, prefix)
			if !ok {
				return nil, false
			}
			s, ok := keywordOr(v, sizes)
			return one(property, s), ok
		},
	}
}

// withPriority sets a family's dispatch priority.
func withPriority(f *Family, prio int) *Family {
	f.Prio = prio
	return f
}

// Package utility defines the capability every utility family implements and
// the default family set.
//
// A family is a leaf: a set of literal prefixes it owns in the registry, a
// dispatch priority, a category tag and a pure parse function. Families never
// see modifiers or the important marker; they receive the bare base class,
// including a leading "-" for negative forms.
package utility

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// String renders the declaration without the trailing semicolon.
func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Parser is implemented by every utility family.
type Parser interface {
	// Patterns returns the literal prefixes this parser owns ("bg-", "rounded", "flex").
	Patterns() []string
	// Priority breaks ties between parsers registered on the same prefix; higher wins.
	Priority() int
	// Category tags the family for reporting.
	Category() Category
	// Parse resolves a base class. ok is false when the class is outside the
	// family's grammar. Marker classes return ok with no declarations.
	Parse(class string) (decls []Declaration, ok bool)
}

// ParseFunc is the body of a Family.
type ParseFunc func(class string) ([]Declaration, bool)

// Family is the concrete Parser used for every built-in utility family.
type Family struct {
	Name     string
	Prefixes []string
	Prio     int
	Cat      Category
	Fn       ParseFunc
}

// Patterns implements Parser.
func (f *Family) Patterns() []string { return f.Prefixes }

// Priority implements Parser.
func (f *Family) Priority() int { return f.Prio }

// Category implements Parser.
func (f *Family) Category() Category { return f.Cat }

// Parse implements Parser.
func (f *Family) Parse(class string) ([]Declaration, bool) {
	decls, ok := f.Fn(class)
	if !ok {
		return nil, false
	}
	return decls, true
}

// String returns the family name.
func (f *Family) String() string { return f.Name }

// Static builds a family of literal classes with fixed declarations.
func Static(name string, cat Category, classes map[string][]Declaration) *Family {
	prefixes := make([]string, 0, len(classes))
	for class := range classes {
		prefixes = append(prefixes, class)
	}
	return &Family{
		Name:     name,
		Prefixes: prefixes,
		Cat:      cat,
		Fn: func(class string) ([]Declaration, bool) {
			decls, ok := classes[class]
			if !ok {
				return nil, false
			}
			// Copy so callers can set Important without touching the table
			out := make([]Declaration, len(decls))
			copy(out, decls)
			return out, true
		},
	}
}

// Keyword builds a family mapping "<prefix><key>" to one property.
func Keyword(name string, cat Category, prefix, property string, values map[string]string) *Family {
	return &Family{
		Name:     name,
		Prefixes: []string{prefix},
		Cat:      cat,
		Fn: func(class string) ([]Declaration, bool) {
			key, ok := strings.CutPrefix(class, prefix)
			if !ok {
				return nil, false
			}
			v, ok := values[key]
			if !ok {
				return nil, false
			}
			return one(property, v), true
		},
	}
}

// one is shorthand for a single declaration.
func one(property, v string) []Declaration {
	return []Declaration{{Property: property, Value: v}}
}

// each applies the same value to several properties.
func each(v string, properties ...string) []Declaration {
	decls := make([]Declaration, len(properties))
	for i, p := range properties {
		decls[i] = Declaration{Property: p, Value: v}
	}
	return decls
}

// decls builds a declaration list from property/value pairs.
func decls(pairs ...string) []Declaration {
	out := make([]Declaration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return out
}

// cutLongest strips the longest matching prefix and returns it with the rest.
func cutLongest(class string, prefixes []string) (prefix, rest string, ok bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(class, p) && len(p) > len(prefix) {
			prefix = p
			ok = true
		}
	}
	if !ok {
		return "", "", false
	}
	return prefix, class[len(prefix):], true
}

// sided builds a family whose prefixes each map to a list of properties that
// all receive the resolved value: "px-4" → padding-left, padding-right.
func sided(name string, cat Category, negatives bool, sides map[string][]string, resolve func(string) (string, bool)) *Family {
	prefixes := make([]string, 0, len(sides))
	for p := range sides {
		prefixes = append(prefixes, p)
	}
	return &Family{
		Name:     name,
		Prefixes: prefixes,
		Cat:      cat,
		Fn: func(class string) ([]Declaration, bool) {
			rest, neg := value.Negative(class)
			if neg && !negatives {
				return nil, false
			}
			prefix, v, ok := cutLongest(rest, prefixes)
			if !ok {
				return nil, false
			}
			resolved, ok := resolve(v)
			if !ok {
				return nil, false
			}
			if neg {
				if resolved, ok = value.Negate(resolved); !ok {
					return nil, false
				}
			}
			return each(resolved, sides[prefix]...), true
		},
	}
}

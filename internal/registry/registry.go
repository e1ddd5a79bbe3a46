// Package registry maps utility class prefixes to the parsers that own them.
//
// Lookup walks a byte-keyed prefix tree along the base class and collects
// every parser whose pattern is a prefix of it. Longer prefixes are more
// specific and come first; parsers sharing a prefix are ordered by priority,
// then by registration order.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yacobolo/twcss/internal/utility"
)

type entry struct {
	parser   utility.Parser
	priority int
	id       int
}

type node struct {
	children map[byte]*node
	entries  []entry
}

// Registry is a prefix tree of utility parsers. Registration is not safe for
// concurrent use; a frozen registry is read-only and may be shared.
type Registry struct {
	root     *node
	frozen   bool
	next     int
	patterns []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{root: &node{}}
}

// Register adds p under each of its patterns. It panics when the registry is
// frozen or a pattern is empty.
func (r *Registry) Register(p utility.Parser) {
	if r.frozen {
		panic("registry: Register called after Freeze")
	}
	id := r.next
	r.next++

	for _, pattern := range p.Patterns() {
		if pattern == "" {
			panic(fmt.Sprintf("registry: %v has an empty pattern", p))
		}

		n := r.root
		for i := 0; i < len(pattern); i++ {
			c := pattern[i]
			if n.children == nil {
				n.children = make(map[byte]*node)
			}
			child, ok := n.children[c]
			if !ok {
				child = &node{}
				n.children[c] = child
			}
			n = child
		}

		if len(n.entries) == 0 {
			r.patterns = append(r.patterns, pattern)
		}
		n.entries = append(n.entries, entry{parser: p, priority: p.Priority(), id: id})
		slices.SortStableFunc(n.entries, func(a, b entry) int {
			if a.priority != b.priority {
				return b.priority - a.priority
			}
			return a.id - b.id
		})
	}
}

// Freeze marks the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Find returns the most specific parser for base.
func (r *Registry) Find(base string) (utility.Parser, bool) {
	c := r.Candidates(base)
	if len(c) == 0 {
		return nil, false
	}
	return c[0], true
}

// Candidates returns every parser whose pattern prefixes base: longest
// prefix first, priority descending within a prefix. A parser registered
// under several matching patterns appears once, at its most specific match.
func (r *Registry) Candidates(base string) []utility.Parser {
	key := LookupKey(base)

	var levels [][]entry
	n := r.root
	for i := 0; i < len(key); i++ {
		child, ok := n.children[key[i]]
		if !ok {
			break
		}
		n = child
		if len(n.entries) > 0 {
			levels = append(levels, n.entries)
		}
	}

	var out []utility.Parser
	seen := make(map[int]bool)
	for i := len(levels) - 1; i >= 0; i-- {
		for _, e := range levels[i] {
			if seen[e.id] {
				continue
			}
			seen[e.id] = true
			out = append(out, e.parser)
		}
	}
	return out
}

// Patterns returns every registered pattern in lexical order.
func (r *Registry) Patterns() []string {
	out := slices.Clone(r.patterns)
	slices.Sort(out)
	return out
}

// LookupKey strips the important marker and the negative sign from a base
// class: "!-mt-4" → "mt-4".
func LookupKey(base string) string {
	base = strings.TrimPrefix(base, "!")
	base = strings.TrimSuffix(base, "!")
	if len(base) > 1 && base[0] == '-' && base[1] != '-' {
		base = base[1:]
	}
	return base
}

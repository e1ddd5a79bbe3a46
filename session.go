package twcss

import (
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type ruleKey struct {
	selector string
	atRules  string
}

func keyOf(r Rule) ruleKey {
	return ruleKey{selector: r.Selector, atRules: strings.Join(r.AtRules, "\x00")}
}

// Session accumulates compiled rules for one stylesheet. It is not safe for
// concurrent use.
type Session struct {
	gen      *Generator
	compiled map[string]bool
	classes  []string
	rules    []Rule
	index    map[ruleKey]int
}

// AddClass compiles token and merges its rule into the session. Adding a
// token twice is a no-op. On error the session is unchanged.
func (s *Session) AddClass(token string) error {
	if s.compiled[token] {
		return nil
	}

	rule, err := s.gen.Compile(token)
	if err != nil {
		return err
	}

	s.compiled[token] = true
	s.classes = append(s.classes, token)
	if len(rule.Declarations) > 0 {
		s.AddRule(rule)
	}
	return nil
}

// AddClasses adds every token and returns the combined failures. Use
// multierr.Errors to split the result.
func (s *Session) AddClasses(tokens []string) error {
	var errs error
	for _, t := range tokens {
		errs = multierr.Append(errs, s.AddClass(t))
	}
	return errs
}

// AddRule merges r into the session. A rule with the same selector and
// at-rule chain as an existing one is merged into it: a repeated property
// keeps its position and takes the new value, new properties are appended.
func (s *Session) AddRule(r Rule) {
	k := keyOf(r)
	i, ok := s.index[k]
	if !ok {
		s.index[k] = len(s.rules)
		s.rules = append(s.rules, r.clone())
		return
	}

	existing := &s.rules[i]
	for _, d := range r.Declarations {
		j := slices.IndexFunc(existing.Declarations, func(e Declaration) bool {
			return e.Property == d.Property
		})
		if j >= 0 {
			existing.Declarations[j] = d
		} else {
			existing.Declarations = append(existing.Declarations, d)
		}
	}
	s.gen.log.Debug("rule merged", zap.String("selector", r.Selector), zap.Int("declarations", len(existing.Declarations)))
}

// Has reports whether token was compiled into the session.
func (s *Session) Has(token string) bool { return s.compiled[token] }

// Classes returns the compiled tokens in insertion order.
func (s *Session) Classes() []string { return slices.Clone(s.classes) }

// Rules returns a copy of the session's rules in emission order.
func (s *Session) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.clone()
	}
	return out
}

// Len returns the number of rules.
func (s *Session) Len() int { return len(s.rules) }

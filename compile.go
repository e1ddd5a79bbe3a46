package twcss

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/twcss/internal/variant"
)

// Rule is one compiled class: a selector, the at-rules wrapping it
// (outermost first, empty for top level) and its declarations in order.
type Rule struct {
	Selector     string
	AtRules      []string
	Declarations []Declaration
}

func (r Rule) clone() Rule {
	r.AtRules = slices.Clone(r.AtRules)
	r.Declarations = slices.Clone(r.Declarations)
	return r
}

// Compile turns a token into a rule. A marker class such as "group" compiles
// to a rule without declarations.
func (g *Generator) Compile(token string) (Rule, error) {
	mods, base := g.decomposer.Decompose(token)

	decls, err := g.resolve(token, base)
	if err != nil {
		g.log.Debug("compile failed", zap.String("class", token), zap.Error(err))
		return Rule{}, err
	}

	selector, atRules := g.wrap(token, mods)
	return Rule{Selector: selector, AtRules: atRules, Declarations: decls}, nil
}

// ClassToDeclarations returns the declarations a token produces, without
// selector or at-rule context.
func (g *Generator) ClassToDeclarations(token string) ([]Declaration, error) {
	rule, err := g.Compile(token)
	if err != nil {
		return nil, err
	}
	return rule.Declarations, nil
}

// stripImportant removes a leading or trailing "!" from a base class.
func stripImportant(base string) (bool, string) {
	if len(base) > 1 && base[0] == '!' {
		return true, base[1:]
	}
	if len(base) > 1 && base[len(base)-1] == '!' {
		return true, base[:len(base)-1]
	}
	return false, base
}

func (g *Generator) resolve(token, base string) ([]Declaration, error) {
	important, bare := stripImportant(base)

	candidates := g.registry.Candidates(bare)
	if len(candidates) == 0 {
		err := &UnknownClassError{Class: token, Base: base}
		if s := g.registry.Suggest(bare); s != "" {
			err.Suggestion = token[:len(token)-len(base)] + strings.Replace(base, bare, s, 1)
		}
		return nil, err
	}

	for _, p := range candidates {
		decls, ok := p.Parse(bare)
		if !ok {
			continue
		}
		out := slices.Clone(decls)
		if important {
			for i := range out {
				out[i].Important = true
			}
		}
		return out, nil
	}
	return nil, &InvalidValueError{Class: token, Base: base}
}

// wrap builds the selector and at-rule chain for a decomposed token.
func (g *Generator) wrap(token string, mods []variant.Modifier) (string, []string) {
	selector := "." + EscapeClass(token)

	var elements, ancestors, atRules []string
	for _, m := range mods {
		switch m.Kind {
		case variant.PseudoClass:
			selector += m.Value
		case variant.PseudoElement:
			elements = append(elements, m.Value)
		case variant.Group:
			ancestors = append(ancestors, ".group"+m.Value+" ")
		case variant.Peer:
			ancestors = append(ancestors, ".peer"+m.Value+" ~ ")
		case variant.ArbitrarySelector:
			selector = strings.ReplaceAll(m.Value, "&", selector)
		case variant.Responsive:
			if q, ok := g.theme.minWidth(m.Value); ok {
				atRules = append(atRules, q)
			}
		case variant.Dark:
			if g.theme.DarkMode == DarkModeClass {
				ancestors = append(ancestors, "."+EscapeClass(g.theme.DarkClass)+" ")
			} else {
				atRules = append(atRules, "@media (prefers-color-scheme: dark)")
			}
		case variant.ArbitraryMedia:
			atRules = append(atRules, m.Value)
		}
	}

	selector = strings.Join(ancestors, "") + selector + strings.Join(elements, "")
	return selector, atRules
}

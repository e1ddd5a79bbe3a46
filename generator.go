package twcss

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yacobolo/twcss/internal/registry"
	"github.com/yacobolo/twcss/internal/utility"
	"github.com/yacobolo/twcss/internal/variant"
)

// Declaration is a single CSS property/value pair.
type Declaration = utility.Declaration

// Parser is the capability every utility family implements.
type Parser = utility.Parser

// Category groups utility families for reporting.
type Category = utility.Category

// Tables holds the value tables the default families resolve against.
type Tables = utility.Tables

// DefaultTables returns a fresh copy of the stock value tables.
func DefaultTables() *Tables { return utility.DefaultTables() }

// Generator compiles class tokens against a frozen registry. It is immutable
// after New and safe for concurrent use; sessions created from it are not.
type Generator struct {
	registry   *registry.Registry
	decomposer *variant.Decomposer
	theme      Theme
	log        *zap.Logger
}

type options struct {
	theme   Theme
	tables  *Tables
	parsers []Parser
	log     *zap.Logger
}

// Option configures a Generator.
type Option func(*options)

// WithTheme sets breakpoints and the dark-mode strategy.
func WithTheme(t Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithTables replaces the value tables used by the default families.
func WithTables(t *Tables) Option {
	return func(o *options) { o.tables = t }
}

// WithParsers registers extra utility parsers after the defaults. A parser
// sharing a prefix with a default family needs a higher priority to win.
func WithParsers(ps ...Parser) Option {
	return func(o *options) { o.parsers = append(o.parsers, ps...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New builds a Generator. The theme is validated; the registry is frozen
// before New returns.
func New(opts ...Option) (*Generator, error) {
	o := options{theme: DefaultTheme(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	reg := registry.New()
	for _, p := range utility.Defaults(o.tables) {
		reg.Register(p)
	}
	for _, p := range o.parsers {
		reg.Register(p)
	}
	reg.Freeze()

	g := &Generator{
		registry:   reg,
		decomposer: variant.New(o.theme.breakpointNames()...),
		theme:      o.theme,
		log:        o.log.Named("compile"),
	}
	g.log.Debug("registry built",
		zap.Int("patterns", len(reg.Patterns())),
		zap.Int("breakpoints", len(o.theme.Breakpoints)),
		zap.String("dark_mode", string(o.theme.DarkMode)))
	return g, nil
}

// MustNew is New for static configurations; it panics on error.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Theme returns the generator's theme.
func (g *Generator) Theme() Theme { return g.theme }

// Patterns returns every registered utility prefix in lexical order.
func (g *Generator) Patterns() []string { return g.registry.Patterns() }

// Category returns the category of the family that resolves token.
func (g *Generator) Category(token string) (Category, bool) {
	_, base := g.decomposer.Decompose(token)
	_, bare := stripImportant(base)
	for _, p := range g.registry.Candidates(bare) {
		if _, ok := p.Parse(bare); ok {
			return p.Category(), true
		}
	}
	return "", false
}

// NewSession returns an empty session bound to g.
func (g *Generator) NewSession() *Session {
	return &Session{
		gen:      g,
		compiled: make(map[string]bool),
		index:    make(map[ruleKey]int),
	}
}

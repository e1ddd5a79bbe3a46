// Package variant splits a class token into its modifier chain and base class.
//
//	md:hover:bg-red-500     → [md, hover] bg-red-500
//	content-['a:b']         → [] content-['a:b']
//	[&>*]:p-4               → [[&>*]] p-4
//
// Decomposition never fails. The first segment that is not a known modifier
// stops the scan and becomes part of the base class together with everything
// after it.
package variant

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

// Kind tags a Modifier.
type Kind int

// Modifier kinds.
const (
	PseudoClass Kind = iota
	PseudoElement
	Responsive
	Dark
	Group
	Peer
	ArbitrarySelector
	ArbitraryMedia
)

var kindNames = [...]string{
	PseudoClass:       "pseudo-class",
	PseudoElement:     "pseudo-element",
	Responsive:        "responsive",
	Dark:              "dark",
	Group:             "group",
	Peer:              "peer",
	ArbitrarySelector: "arbitrary-selector",
	ArbitraryMedia:    "arbitrary-media",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Modifier is one classified segment of a token.
//
// Value depends on Kind: the pseudo selector (":hover", "::before") for
// pseudo, group and peer modifiers; the breakpoint name for Responsive; the
// decoded selector template ("&>*") for ArbitrarySelector; the decoded
// at-rule ("@media (orientation: portrait)") for ArbitraryMedia.
type Modifier struct {
	Kind  Kind
	Name  string
	Value string
}

// PseudoClasses maps modifier names to the selector they append.
var PseudoClasses = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"focus-visible":     ":focus-visible",
	"focus-within":      ":focus-within",
	"active":            ":active",
	"visited":           ":visited",
	"target":            ":target",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"checked":           ":checked",
	"indeterminate":     ":indeterminate",
	"default":           ":default",
	"required":          ":required",
	"optional":          ":optional",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"read-only":         ":read-only",
	"placeholder-shown": ":placeholder-shown",
	"autofill":          ":autofill",
	"empty":             ":empty",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"open":              "[open]",
}

// PseudoElements maps modifier names to the pseudo-element they append.
var PseudoElements = map[string]string{
	"before":       "::before",
	"after":        "::after",
	"placeholder":  "::placeholder",
	"selection":    "::selection",
	"marker":       "::marker",
	"file":         "::file-selector-button",
	"first-line":   "::first-line",
	"first-letter": "::first-letter",
	"backdrop":     "::backdrop",
}

// Decomposer classifies segments against the fixed vocabulary plus a set of
// breakpoint names. It is immutable and safe for concurrent use.
type Decomposer struct {
	breakpoints map[string]bool
}

// New returns a Decomposer recognising the given breakpoint names.
func New(breakpoints ...string) *Decomposer {
	d := &Decomposer{breakpoints: make(map[string]bool, len(breakpoints))}
	for _, b := range breakpoints {
		d.breakpoints[b] = true
	}
	return d
}

// Decompose splits token with the default breakpoints sm, md, lg, xl and 2xl.
func Decompose(token string) ([]Modifier, string) {
	return defaultDecomposer.Decompose(token)
}

var defaultDecomposer = New("sm", "md", "lg", "xl", "2xl")

// Decompose splits token into its modifiers and base class. For a non-empty
// token the base is never empty: "hover:" yields no modifiers and base "hover:".
func (d *Decomposer) Decompose(token string) ([]Modifier, string) {
	segments := Split(token)

	var mods []Modifier
	for i, seg := range segments[:len(segments)-1] {
		m, ok := d.classify(seg)
		if !ok {
			return mods, strings.Join(segments[i:], ":")
		}
		mods = append(mods, m)
	}

	base := segments[len(segments)-1]
	if base == "" {
		return nil, token
	}
	return mods, base
}

// Reserved reports whether name is claimed by the fixed modifier vocabulary,
// making it unusable as a breakpoint name.
func Reserved(name string) bool {
	_, ok := vocabulary.classify(name)
	return ok
}

var vocabulary = New()

// Split cuts token at every ":" outside brackets and parentheses. Quotes
// inside brackets are honoured so "content-['a:b']" stays whole.
func Split(token string) []string {
	var segments []string
	depth, start := 0, 0
	var quote byte

	for i := 0; i < len(token); i++ {
		c := token[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			if depth > 0 {
				quote = c
			}
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				segments = append(segments, token[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, token[start:])
}

func (d *Decomposer) classify(seg string) (Modifier, bool) {
	if v, ok := PseudoClasses[seg]; ok {
		return Modifier{Kind: PseudoClass, Name: seg, Value: v}, true
	}
	if v, ok := PseudoElements[seg]; ok {
		return Modifier{Kind: PseudoElement, Name: seg, Value: v}, true
	}
	if d.breakpoints[seg] {
		return Modifier{Kind: Responsive, Name: seg, Value: seg}, true
	}
	if seg == "dark" {
		return Modifier{Kind: Dark, Name: seg}, true
	}
	if state, ok := strings.CutPrefix(seg, "group-"); ok {
		if v, ok := PseudoClasses[state]; ok {
			return Modifier{Kind: Group, Name: seg, Value: v}, true
		}
	}
	if state, ok := strings.CutPrefix(seg, "peer-"); ok {
		if v, ok := PseudoClasses[state]; ok {
			return Modifier{Kind: Peer, Name: seg, Value: v}, true
		}
	}
	if m, ok := arbitrary(seg); ok {
		return m, true
	}
	return Modifier{}, false
}

// arbitrary recognises "[&:nth-child(3)]" and "[@media(orientation:portrait)]".
func arbitrary(seg string) (Modifier, bool) {
	if len(seg) < 3 || seg[0] != '[' || seg[len(seg)-1] != ']' {
		return Modifier{}, false
	}
	inner := seg[1 : len(seg)-1]
	if !value.Balanced(inner) || strings.ContainsAny(inner, "{};") {
		return Modifier{}, false
	}
	inner = value.Decode(inner)

	switch {
	case strings.HasPrefix(inner, "@") && len(inner) > 1:
		return Modifier{Kind: ArbitraryMedia, Name: seg, Value: inner}, true
	case strings.Contains(inner, "&"):
		return Modifier{Kind: ArbitrarySelector, Name: seg, Value: inner}, true
	}
	return Modifier{}, false
}

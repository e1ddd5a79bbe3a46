package twcss

import (
	"io"
	"strings"
)

const indentUnit = "  "

// GenerateCSS renders the session's rules. Consecutive rules sharing leading
// at-rules share the enclosing blocks. The session is not modified.
func (s *Session) GenerateCSS() string {
	var b strings.Builder
	_ = s.WriteCSS(&b)
	return b.String()
}

// WriteCSS writes the stylesheet to w.
func (s *Session) WriteCSS(w io.Writer) error {
	var b strings.Builder
	var open []string

	for _, r := range s.rules {
		common := 0
		for common < len(open) && common < len(r.AtRules) && open[common] == r.AtRules[common] {
			common++
		}
		for len(open) > common {
			open = open[:len(open)-1]
			b.WriteString(strings.Repeat(indentUnit, len(open)))
			b.WriteString("}\n")
		}
		for _, at := range r.AtRules[common:] {
			b.WriteString(strings.Repeat(indentUnit, len(open)))
			b.WriteString(at)
			b.WriteString(" {\n")
			open = append(open, at)
		}
		writeRule(&b, r, len(open))
	}
	for len(open) > 0 {
		open = open[:len(open)-1]
		b.WriteString(strings.Repeat(indentUnit, len(open)))
		b.WriteString("}\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRule(b *strings.Builder, r Rule, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent)
		b.WriteString(indentUnit)
		b.WriteString(d.String())
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

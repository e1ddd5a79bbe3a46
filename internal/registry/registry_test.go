package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/twcss/internal/utility"
)

func family(name string, prio int, patterns ...string) *utility.Family {
	return &utility.Family{
		Name:     name,
		Prefixes: patterns,
		Prio:     prio,
		Cat:      utility.CategoryLayout,
		Fn:       func(string) ([]utility.Declaration, bool) { return nil, true },
	}
}

func names(ps []utility.Parser) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.(*utility.Family).Name
	}
	return out
}

func TestCandidatesLongestPrefixFirst(t *testing.T) {
	r := New()
	r.Register(family("border", 0, "border"))
	r.Register(family("border-spacing", 0, "border-spacing-"))
	r.Register(family("border-collapse", 0, "border-collapse", "border-separate"))
	r.Freeze()

	assert.Equal(t, []string{"border-spacing", "border"}, names(r.Candidates("border-spacing-2")))
	assert.Equal(t, []string{"border-collapse", "border"}, names(r.Candidates("border-collapse")))
	assert.Equal(t, []string{"border"}, names(r.Candidates("border-2")))
	assert.Equal(t, []string{"border"}, names(r.Candidates("border")))
	assert.Empty(t, r.Candidates("bord"))
}

func TestCandidatesPriorityWithinPrefix(t *testing.T) {
	r := New()
	r.Register(family("text-color", 0, "text-"))
	r.Register(family("font-size", 20, "text-"))
	r.Register(family("text-other", 0, "text-"))

	assert.Equal(t, []string{"font-size", "text-color", "text-other"}, names(r.Candidates("text-lg")))

	p, ok := r.Find("text-lg")
	require.True(t, ok)
	assert.Equal(t, "font-size", p.(*utility.Family).Name)
}

func TestCandidatesDeduplicatesParsers(t *testing.T) {
	r := New()
	r.Register(family("inset", 0, "inset-", "inset-x-"))

	assert.Equal(t, []string{"inset"}, names(r.Candidates("inset-x-4")))
}

func TestLookupStripsMarkers(t *testing.T) {
	r := New()
	r.Register(family("margin", 0, "mt-"))

	for _, base := range []string{"mt-4", "-mt-4", "!mt-4", "mt-4!", "!-mt-4"} {
		_, ok := r.Find(base)
		assert.True(t, ok, base)
	}
	_, ok := r.Find("--mt-4")
	assert.False(t, ok)
}

func TestRegisterAfterFreezePanics(t *testing.T) {
	r := New()
	r.Freeze()
	assert.True(t, r.Frozen())
	assert.Panics(t, func() { r.Register(family("p", 0, "p-")) })
}

func TestRegisterEmptyPatternPanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.Register(family("bad", 0, "")) })
}

func TestPatterns(t *testing.T) {
	r := New()
	r.Register(family("p", 0, "p-", "px-"))
	r.Register(family("bg", 0, "bg-"))
	r.Register(family("bg2", 0, "bg-"))

	assert.Equal(t, []string{"bg-", "p-", "px-"}, r.Patterns())
}

func TestSuggest(t *testing.T) {
	r := New()
	for _, p := range utility.Defaults(nil) {
		r.Register(p)
	}
	r.Freeze()

	tests := []struct {
		base string
		want string
	}{
		{base: "bgg-blue-500", want: "bg-blue-500"},
		{base: "roundd-lg", want: "rounded-lg"},
		{base: "-mtt-4", want: "-mt-4"},
		{base: "hiddn", want: "hidden"},
		{base: "foo-bar-baz", want: ""},
		{base: "zzzzzz", want: ""},
		{base: "", want: ""},
		{base: ":", want: ""},
		{base: "-", want: ""},
		{base: "[", want: ""},
		{base: "[colr:red]", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Suggest(tt.base))
		})
	}
}

func TestDefaultFamiliesResolveThroughRegistry(t *testing.T) {
	r := New()
	for _, p := range utility.Defaults(nil) {
		r.Register(p)
	}
	r.Freeze()

	resolve := func(base string) ([]utility.Declaration, bool) {
		for _, p := range r.Candidates(base) {
			if d, ok := p.Parse(base); ok {
				return d, true
			}
		}
		return nil, false
	}

	tests := []struct {
		base     string
		property string
		value    string
	}{
		{"bg-blue-500", "background-color", "#3b82f6"},
		{"bg-cover", "background-size", "cover"},
		{"text-center", "text-align", "center"},
		{"text-lg", "font-size", "1.125rem"},
		{"text-teal-400", "color", "#2dd4bf"},
		{"content-center", "align-content", "center"},
		{"content-['a:b']", "content", "'a:b'"},
		{"-left-5", "left", "-1.25rem"},
		{"top-[13px]", "top", "13px"},
		{"w-1/2", "width", "50%"},
		{"border-spacing-2", "--tw-border-spacing-x", "0.5rem"},
		{"border-collapse", "border-collapse", "collapse"},
		{"flex", "display", "flex"},
		{"flex-col", "flex-direction", "column"},
		{"inline-flex", "display", "inline-flex"},
		{"font-bold", "font-weight", "700"},
		{"font-mono", "font-family", utility.DefaultTables().FontFamilies["mono"]},
		{"stroke-2", "stroke-width", "2"},
		{"stroke-red-500", "stroke", "#ef4444"},
		{"grid-cols-3", "grid-template-columns", "repeat(3, minmax(0, 1fr))"},
		{"col-span-2", "grid-column", "span 2 / span 2"},
		{"z-10", "z-index", "10"},
		{"-z-10", "z-index", "-10"},
		{"opacity-50", "opacity", "0.5"},
		{"duration-300", "transition-duration", "300ms"},
		{"rotate-45", "rotate", "45deg"},
		{"-rotate-45", "rotate", "-45deg"},
		{"cursor-pointer", "cursor", "pointer"},
		{"[mask-type:luminance]", "mask-type", "luminance"},
		{"list-disc", "list-style-type", "disc"},
		{"list-item", "display", "list-item"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, ok := resolve(tt.base)
			require.True(t, ok)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.property, got[0].Property)
			assert.Equal(t, tt.value, got[0].Value)
		})
	}

	_, ok := resolve("rounded-banana")
	assert.False(t, ok)
	assert.Empty(t, r.Candidates("foo-bar-baz"))
}

package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticReturnsCopies(t *testing.T) {
	f := Static("display", CategoryLayout, map[string][]Declaration{
		"block": one("display", "block"),
	})

	got, ok := f.Parse("block")
	require.True(t, ok)
	got[0].Important = true

	again, ok := f.Parse("block")
	require.True(t, ok)
	assert.False(t, again[0].Important, "parse result must not alias the table")
}

func TestMarkerClassesHaveNoDeclarations(t *testing.T) {
	m := markerFamily()
	for _, class := range []string{"group", "peer"} {
		got, ok := m.Parse(class)
		assert.True(t, ok, class)
		assert.Empty(t, got, class)
	}
}

func TestSpacingFamilies(t *testing.T) {
	families := boxFamilies(DefaultTables())
	padding, margin := families[0], families[1]

	tests := []struct {
		parser Parser
		class  string
		want   []Declaration
	}{
		{padding, "p-4", one("padding", "1rem")},
		{padding, "px-2.5", decls("padding-left", "0.625rem", "padding-right", "0.625rem")},
		{padding, "p-px", one("padding", "1px")},
		{padding, "p-0", one("padding", "0px")},
		{padding, "p-[13px]", one("padding", "13px")},
		{padding, "p-(--gutter)", one("padding", "var(--gutter)")},
		{margin, "m-auto", one("margin", "auto")},
		{margin, "-mt-2", one("margin-top", "-0.5rem")},
		{margin, "-mx-px", decls("margin-left", "-1px", "margin-right", "-1px")},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got, ok := tt.parser.Parse(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := padding.Parse("-p-4")
	assert.False(t, ok, "padding has no negative form")
	_, ok = margin.Parse("-m-auto")
	assert.False(t, ok, "auto has no negative")
	_, ok = margin.Parse("-mx-auto")
	assert.False(t, ok)
	_, ok = padding.Parse("p-banana")
	assert.False(t, ok)
}

func TestSizingFractions(t *testing.T) {
	families := boxFamilies(DefaultTables())
	width := families[3]

	got, ok := width.Parse("w-1/2")
	require.True(t, ok)
	assert.Equal(t, one("width", "50%"), got)

	got, ok = width.Parse("w-screen")
	require.True(t, ok)
	assert.Equal(t, one("width", "100vw"), got)

	got, ok = width.Parse("w-(--my-width)")
	require.True(t, ok)
	assert.Equal(t, one("width", "var(--my-width)"), got)
}

func TestColors(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "blue-500", want: "#3b82f6", wantOK: true},
		{input: "blue-600", want: "#2563eb", wantOK: true},
		{input: "white", want: "#fff", wantOK: true},
		{input: "blue-500/50", want: "rgb(59 130 246 / 0.5)", wantOK: true},
		{input: "white/[.35]", want: "rgb(255 255 255 / 0.35)", wantOK: true},
		{input: "current/25", want: "color-mix(in oklab, currentColor 25%, transparent)", wantOK: true},
		{input: "[#1da1f2]", want: "#1da1f2", wantOK: true},
		{input: "[color:var(--brand)]", want: "var(--brand)", wantOK: true},
		{input: "(--brand)", want: "var(--brand)", wantOK: true},
		{input: "[length:2px]", wantOK: false},
		{input: "blue-450", wantOK: false},
		{input: "blue-500/500", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := tables.color(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTextFamiliesDisambiguate(t *testing.T) {
	tables := DefaultTables()
	size, color := fontSizeFamily(tables), textColorFamily(tables)

	got, ok := size.Parse("text-lg")
	require.True(t, ok)
	assert.Equal(t, decls("font-size", "1.125rem", "line-height", "1.75rem"), got)

	got, ok = size.Parse("text-lg/7")
	require.True(t, ok)
	assert.Equal(t, decls("font-size", "1.125rem", "line-height", "1.75rem"), got)

	got, ok = size.Parse("text-sm/tight")
	require.True(t, ok)
	assert.Equal(t, decls("font-size", "0.875rem", "line-height", "1.25"), got)

	got, ok = size.Parse("text-[13px]")
	require.True(t, ok)
	assert.Equal(t, one("font-size", "13px"), got)

	_, ok = size.Parse("text-[#fff]")
	assert.False(t, ok, "colors are not sizes")
	_, ok = size.Parse("text-teal-400")
	assert.False(t, ok)

	got, ok = color.Parse("text-teal-400")
	require.True(t, ok)
	assert.Equal(t, one("color", "#2dd4bf"), got)
}

func TestBorderFamily(t *testing.T) {
	border := borderFamily(DefaultTables())

	tests := []struct {
		class string
		want  []Declaration
	}{
		{"border", decls("border-style", "var(--tw-border-style, solid)", "border-width", "1px")},
		{"border-2", decls("border-style", "var(--tw-border-style, solid)", "border-width", "2px")},
		{"border-x-4", decls(
			"border-left-style", "var(--tw-border-style, solid)",
			"border-right-style", "var(--tw-border-style, solid)",
			"border-left-width", "4px",
			"border-right-width", "4px",
		)},
		{"border-t", decls("border-top-style", "var(--tw-border-style, solid)", "border-top-width", "1px")},
		{"border-dashed", decls("--tw-border-style", "dashed", "border-style", "dashed")},
		{"border-red-500", one("border-color", "#ef4444")},
		{"border-b-black", one("border-bottom-color", "#000")},
		{"border-[3px]", decls("border-style", "var(--tw-border-style, solid)", "border-width", "3px")},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got, ok := border.Parse(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := border.Parse("border2")
	assert.False(t, ok)
}

func TestRoundedFamily(t *testing.T) {
	rounded := roundedFamily(DefaultTables())

	got, ok := rounded.Parse("rounded")
	require.True(t, ok)
	assert.Equal(t, one("border-radius", "0.25rem"), got)

	got, ok = rounded.Parse("rounded-t-lg")
	require.True(t, ok)
	assert.Equal(t, each("0.5rem", "border-top-left-radius", "border-top-right-radius"), got)

	got, ok = rounded.Parse("rounded-br")
	require.True(t, ok)
	assert.Equal(t, one("border-bottom-right-radius", "0.25rem"), got)

	got, ok = rounded.Parse("rounded-[12px]")
	require.True(t, ok)
	assert.Equal(t, one("border-radius", "12px"), got)

	_, ok = rounded.Parse("rounded-banana")
	assert.False(t, ok)
}

func TestArbitraryProperty(t *testing.T) {
	f := arbitraryPropertyFamily()

	got, ok := f.Parse("[mask-type:luminance]")
	require.True(t, ok)
	assert.Equal(t, one("mask-type", "luminance"), got)

	got, ok = f.Parse("[--scroll-offset:56px]")
	require.True(t, ok)
	assert.Equal(t, one("--scroll-offset", "56px"), got)

	got, ok = f.Parse("[grid-template-columns:1fr_2fr]")
	require.True(t, ok)
	assert.Equal(t, one("grid-template-columns", "1fr 2fr"), got)

	for _, bad := range []string{"[Color:red]", "[color]", "[color:red;}]", "[:red]"} {
		_, ok := f.Parse(bad)
		assert.False(t, ok, bad)
	}
}

func TestFilters(t *testing.T) {
	tables := DefaultTables()
	filter := filterFamily(tables, "", "filter", filterChain)

	got, ok := filter.Parse("blur-sm")
	require.True(t, ok)
	assert.Equal(t, decls("--tw-blur", "blur(4px)", "filter", filterChain), got)

	got, ok = filter.Parse("-hue-rotate-15")
	require.True(t, ok)
	assert.Equal(t, "hue-rotate(-15deg)", got[0].Value)

	got, ok = filter.Parse("grayscale")
	require.True(t, ok)
	assert.Equal(t, "grayscale(100%)", got[0].Value)

	_, ok = filter.Parse("-blur-sm")
	assert.False(t, ok)
	_, ok = filter.Parse("brightness")
	assert.False(t, ok)
}

func TestDefaultsPatternsAreNonEmpty(t *testing.T) {
	for _, p := range Defaults(nil) {
		assert.NotEmpty(t, p.Patterns(), p)
		for _, pattern := range p.Patterns() {
			assert.NotEmpty(t, pattern, p)
		}
	}
}

func TestPropertyCategory(t *testing.T) {
	assert.Equal(t, CategorySpacing, PropertyCategory("padding-left"))
	assert.Equal(t, CategoryTypography, PropertyCategory("color"))
	assert.Equal(t, CategoryFlexGrid, PropertyCategory("grid-template-columns"))
	assert.Equal(t, CategoryArbitrary, PropertyCategory("--tw-shadow"))
	assert.Equal(t, CategoryArbitrary, PropertyCategory("mask-type"))
}

package twcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(refs []ClassReference) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Token
	}
	return out
}

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "class attribute",
			line: `<div class="p-4 bg-blue-500">`,
			want: []string{"p-4", "bg-blue-500"},
		},
		{
			name: "className attribute",
			line: `<div className="md:text-lg hover:bg-blue-600">`,
			want: []string{"md:text-lg", "hover:bg-blue-600"},
		},
		{
			name: "single quotes",
			line: `<div class='w-1/2 top-[13px]'>`,
			want: []string{"w-1/2", "top-[13px]"},
		},
		{
			name: "string literal in braces",
			line: `<div class={ "flex items-center" }>`,
			want: []string{"flex", "items-center"},
		},
		{
			name: "arbitrary values keep their spaces-free form",
			line: `<p class="content-['a:b'] grid-cols-[1fr_2fr]">`,
			want: []string{"content-['a:b']", "grid-cols-[1fr_2fr]"},
		},
		{
			name: "templ.Classes with literals and KV",
			line: `<div class={ templ.Classes("p-4 m-2", templ.KV("hidden", !open), "w-(--my-width)") }>`,
			want: []string{"hidden", "p-4", "m-2", "w-(--my-width)"},
		},
		{
			name: "templ.KV alone",
			line: `attrs := templ.KV("font-bold", active)`,
			want: []string{"font-bold"},
		},
		{
			name: "comment line",
			line: `// <div class="p-4">`,
			want: nil,
		},
		{
			name: "no classes",
			line: `fmt.Println("hello")`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 1, "x.templ")
			if tt.want == nil {
				assert.Empty(t, refs)
				return
			}
			assert.Equal(t, tt.want, tokens(refs))
		})
	}
}

func TestExtractClassTextColumn(t *testing.T) {
	refs := extractClassesFromLine("        <div class=\"p-4 bgg-red-500\">", 3, "a.templ")
	require.Len(t, refs, 2)

	loc := refs[1].Location
	assert.Equal(t, `<div class="p-4 bgg-red-500">`, loc.Text)
	assert.Equal(t, 25, loc.Column)
	assert.Equal(t, 17, loc.TextColumn)
	assert.Equal(t, "bgg-red-500", loc.Text[loc.TextColumn-1:loc.TextColumn-1+len("bgg-red-500")])

	tabbed := extractClassesFromLine("\t\ttempl.Classes(\"p-4\")", 1, "a.templ")
	require.Len(t, tabbed, 1)
	assert.Equal(t, 18, tabbed[0].Location.Column)
	assert.Equal(t, 16, tabbed[0].Location.TextColumn)
}

func TestExtractClassColumns(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		token   string
		wantCol int
	}{
		{
			name:    "single class",
			line:    `<div class="p-4">`,
			token:   "p-4",
			wantCol: 13,
		},
		{
			name:    "second class",
			line:    `<div class="p-4 bg-blue-500">`,
			token:   "bg-blue-500",
			wantCol: 17,
		},
		{
			name:    "with leading spaces",
			line:    `  <div class="p-4  m-2">`,
			token:   "m-2",
			wantCol: 20,
		},
		{
			name:    "templ literal",
			line:    `templ.Classes("a", "b-2")`,
			token:   "b-2",
			wantCol: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 3, "x.templ")
			for _, r := range refs {
				if r.Token == tt.token {
					require.Equal(t, tt.wantCol, r.Location.Column)
					assert.Equal(t, 3, r.Location.Line)
					return
				}
			}
			t.Fatalf("token %q not found in %v", tt.token, tokens(refs))
		})
	}
}

func TestIsTemplGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "standard templ generated (_templ.go)",
			path:     "internal/web/features/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "alternate templ generated (.templ.go)",
			path:     "internal/web/features/sidebar.templ.go",
			expected: true,
		},
		{
			name:     "regular go file",
			path:     "internal/api/handlers.go",
			expected: false,
		},
		{
			name:     "templ source file",
			path:     "internal/web/features/sidebar.templ",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isTemplGenerated(tt.path)
			require.Equal(t, tt.expected, got, "isTemplGenerated(%q)", tt.path)
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "skip templ generated", path: "internal/web/sidebar_templ.go", expected: true},
		{name: "skip css output", path: "web/static/app.css", expected: true},
		{name: "scan templ source", path: "internal/web/sidebar.templ", expected: false},
		{name: "scan html", path: "web/index.html", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "views", "page.templ"), "<div class=\"p-4 md:text-lg\">\n<span class=\"p-4\"></span>\n")
	writeFile(t, filepath.Join(dir, "views", "page_templ.go"), `templ.Classes("generated")`)
	writeFile(t, filepath.Join(dir, "views", "nested", "card.html"), `<div class="rounded-lg">`)

	refs, stats, err := ScanFiles([]string{filepath.Join(dir, "views", "**", "*")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.ElementsMatch(t, []string{"p-4", "md:text-lg", "p-4", "rounded-lg"}, tokens(refs))
	assert.ElementsMatch(t, []string{"p-4", "md:text-lg", "rounded-lg"}, UniqueTokens(refs))
}

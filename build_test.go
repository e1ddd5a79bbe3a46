package twcss

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "web", "page.templ"), "<div class=\"p-4 md:p-2\">\n<p class=\"p-4 text-lg bgg-red-500\">\n")
	writeFile(t, filepath.Join(dir, "web", "page_templ.go"), `templ_7745c5c3_Var := "class=\"m-8\""`)

	output := filepath.Join(dir, "dist", "css", "app.css")
	result, err := Build(BuildConfig{
		Content: []string{filepath.Join(dir, "web", "**", "*")},
		Output:  output,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 4, result.ClassesFound)
	assert.Equal(t, 3, result.Compiled)
	assert.Equal(t, 3, result.Rules)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown class "bgg-red-500"`)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	css := string(data)
	assert.Equal(t, len(css), result.Bytes)
	assert.Contains(t, css, ".p-4 {\n  padding: 1rem;\n}\n")
	assert.Contains(t, css, "@media (min-width: 768px) {\n  .md\\:p-2 {")
	assert.NotContains(t, css, "m-8")

	rulesets, _ := parseCSS(t, css)
	assert.Equal(t, 3, rulesets)
}

func TestBuildToWriterWithPostProcessors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), `<div class="p-4">`)

	banner := PostProcessFunc(func(css string) (string, error) { return "/* app */\n" + css, nil })
	var buf bytes.Buffer
	result, err := Build(BuildConfig{
		Content:        []string{filepath.Join(dir, "*.html")},
		Writer:         &buf,
		PostProcessors: []PostProcessor{banner},
	})
	require.NoError(t, err)
	assert.Equal(t, "/* app */\n.p-4 {\n  padding: 1rem;\n}\n", buf.String())
	assert.Equal(t, buf.Len(), result.Bytes)
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), `<div class="p-4">`)
	content := []string{filepath.Join(dir, "*.html")}

	_, err := Build(BuildConfig{Content: content})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output")

	boom := errors.New("boom")
	failing := PostProcessFunc(func(string) (string, error) { return "", boom })
	_, err = Build(BuildConfig{Content: content, Writer: &bytes.Buffer{}, PostProcessors: []PostProcessor{failing}})
	require.ErrorIs(t, err, boom)
	assert.True(t, strings.HasPrefix(err.Error(), "post-process failed"))
}

func TestBuildWithCustomTheme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), `<div class="tablet:p-4 dark:p-2">`)

	theme := ThemeFromMap(map[string]int{"tablet": 700}, DarkModeClass, "dark")
	gen, err := New(WithTheme(theme))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Build(BuildConfig{Content: []string{filepath.Join(dir, "*.html")}, Writer: &buf, Generator: gen})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "@media (min-width: 700px) {\n  .tablet\\:p-4 {")
	assert.Contains(t, buf.String(), ".dark .dark\\:p-2 {")
}

package twcss

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// ClassReference is one class token found in a source file.
type ClassReference struct {
	Token    string       // single token: "hover:bg-blue-600"
	Value    string       // whole attribute value the token came from
	Location FileLocation // where the token starts
}

// FileLocation tracks where a class token was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the token's first byte
	Text   string // Line content with surrounding whitespace trimmed, for display

	// TextColumn is Column relative to Text rather than the raw line
	TextColumn int
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
	FilesFailed     int // Files that could not be read
}

// scanPattern is a regex whose first group captures a class attribute value
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific
	patterns = []scanPattern{
		{name: "class attribute", regex: regexp.MustCompile(`\bclass(?:Name)?="([^"]*)"`)},
		{name: "single-quoted class attribute", regex: regexp.MustCompile(`\bclass(?:Name)?='([^']*)'`)},
		{name: "class with string literal in braces", regex: regexp.MustCompile(`\bclass(?:Name)?=\{\s*["` + "`" + `]([^"` + "`" + `]*)["` + "`" + `]`)},
	}

	// templ.Classes and templ.KV take comma-separated arguments
	templKVMulti  = regexp.MustCompile(`templ\.KV\(\s*"([^"]*)"`)
	stringLiteral = regexp.MustCompile(`"([^"]*)"`)

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip *_templ.go files and CSS output
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) || strings.HasSuffix(path, ".css") {
		return true
	}

	// Absolute paths (like /tmp/...) are not affected by the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given glob patterns for class tokens.
// Unreadable files are logged and counted, not fatal.
func ScanFiles(scanPatterns []string, log *zap.Logger) ([]ClassReference, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scan")

	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}
	log.Debug("files discovered",
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			stats.FilesFailed++
			log.Warn("scan failed", zap.String("file", file), zap.Error(err))
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// UniqueTokens returns each distinct token once, in first-seen order.
func UniqueTokens(refs []ClassReference) []string {
	seen := make(map[string]bool, len(refs))
	var out []string
	for _, r := range refs {
		if !seen[r.Token] {
			seen[r.Token] = true
			out = append(out, r.Token)
		}
	}
	return out
}

// expandGlobPatterns expands globs to files and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class tokens
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassesFromLine extracts all class tokens from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	loc := FileLocation{File: file, Line: lineNum, Text: strings.TrimSpace(line)}
	refs := extractRefs(line, loc)

	indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
	for i := range refs {
		refs[i].Location.TextColumn = refs[i].Location.Column - indent
	}
	return refs
}

func extractRefs(line string, loc FileLocation) []ClassReference {
	// templ helpers get their own handling; the generic patterns would
	// double-count the same literals
	if strings.Contains(line, "templ.Classes(") || strings.Contains(line, "templ.KV(") {
		return extractFromTempl(line, loc)
	}

	var refs []ClassReference
	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 || match[2] < 0 {
				continue
			}
			refs = append(refs, splitValue(line[match[2]:match[3]], match[2], loc)...)
		}
	}
	return refs
}

// extractFromTempl handles templ.Classes("a b", templ.KV("c", cond)) and
// bare templ.KV("c", cond). Only string literals are class values; for KV
// only the first argument is.
func extractFromTempl(line string, loc FileLocation) []ClassReference {
	var refs []ClassReference
	seen := make(map[int]bool)

	add := func(start, end int) {
		if seen[start] {
			return
		}
		seen[start] = true
		refs = append(refs, splitValue(line[start:end], start, loc)...)
	}

	for _, m := range templKVMulti.FindAllStringSubmatchIndex(line, -1) {
		add(m[2], m[3])
	}

	const call = "templ.Classes("
	for from := 0; ; {
		idx := strings.Index(line[from:], call)
		if idx < 0 {
			break
		}
		start := from + idx + len(call)
		end := closingParen(line, start)
		for _, part := range splitTemplArgs(line[start:end]) {
			if strings.HasPrefix(strings.TrimSpace(part.text), "templ.KV(") {
				continue
			}
			for _, lit := range stringLiteral.FindAllStringSubmatchIndex(part.text, -1) {
				add(start+part.offset+lit[2], start+part.offset+lit[3])
			}
		}
		from = end
	}
	return refs
}

// closingParen returns the index of the ")" closing a call whose arguments
// start at start, or len(line) when the call continues past the line.
func closingParen(line string, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inString = !inString
		case inString:
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return len(line)
}

type templArg struct {
	text   string
	offset int
}

// splitTemplArgs splits comma-separated arguments at paren depth zero,
// ignoring commas inside string literals
func splitTemplArgs(s string) []templArg {
	var parts []templArg
	parenDepth, start := 0, 0
	inString := false

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inString = !inString
		case inString:
		case c == '(':
			parenDepth++
		case c == ')':
			parenDepth--
		case c == ',' && parenDepth == 0:
			parts = append(parts, templArg{text: s[start:i], offset: start})
			start = i + 1
		}
	}

	if start < len(s) {
		parts = append(parts, templArg{text: s[start:], offset: start})
	}
	return parts
}

// splitValue turns an attribute value into one reference per token.
// offset is the value's byte position in the line.
func splitValue(value string, offset int, loc FileLocation) []ClassReference {
	var refs []ClassReference
	i := 0
	for i < len(value) {
		for i < len(value) && isSpace(value[i]) {
			i++
		}
		j := i
		for j < len(value) && !isSpace(value[j]) {
			j++
		}
		if j > i {
			l := loc
			l.Column = offset + i + 1
			refs = append(refs, ClassReference{Token: value[i:j], Value: value, Location: l})
		}
		i = j
	}
	return refs
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}

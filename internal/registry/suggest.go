package registry

import (
	"strings"

	"github.com/yacobolo/twcss/internal/value"
)

// maxSuggestDistance bounds how far a typo may be from a known prefix.
// Prefixes of five bytes or fewer tolerate a single edit.
const maxSuggestDistance = 2

// Suggest proposes a close known class for an unrecognised base class, or ""
// when nothing is near. The leading segments of base are compared against each
// pattern with the same number of segments and the remainder is carried over:
// "bgg-blue-500" → "bg-blue-500".
func (r *Registry) Suggest(base string) string {
	key := LookupKey(base)
	_, neg := value.Negative(strings.Trim(base, "!"))
	parts := strings.Split(key, "-")

	best, bestDist := "", maxSuggestDistance+1
	for _, pattern := range r.Patterns() {
		core, open := strings.CutSuffix(pattern, "-")
		if !isWordStart(core) {
			// "[" and similar syntax patterns are not spelled
			continue
		}
		n := strings.Count(core, "-") + 1
		if n > len(parts) {
			continue
		}
		head := strings.Join(parts[:n], "-")
		tail := strings.Join(parts[n:], "-")
		if !isWordStart(head) {
			continue
		}
		if open && tail == "" {
			// "bg-" needs a value after it
			continue
		}

		limit := maxSuggestDistance
		if len(core) <= 5 {
			limit = 1
		}
		d := levenshtein(head, core)
		if d == 0 || d > limit || d >= bestDist {
			continue
		}
		best, bestDist = core, d
		if tail != "" {
			best += "-" + tail
		}
	}

	if best != "" && neg {
		best = "-" + best
	}
	return best
}

func isWordStart(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

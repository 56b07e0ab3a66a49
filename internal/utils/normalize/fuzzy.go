package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameMatchThreshold is the minimum similarity score at which two guest names
// are considered the same person during reconciliation.
const NameMatchThreshold = 0.7

// FoldName canonicalizes a person name for fuzzy comparison: lower-case,
// accents stripped, everything but letters and single spaces removed.
func FoldName(s string) string {
	s = strings.ToLower(stripAccents(s))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Levenshtein computes the edit distance between two strings with the standard
// O(n·m) dynamic-programming table, rolling a single row to keep allocation flat.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		current := prev[0]
		prev[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min3(prev[j]+1, prev[j-1]+1, current+cost)
			current = prev[j]
			prev[j] = next
		}
	}
	return prev[len(rb)]
}

// Similarity scores two strings in [0,1] as (maxLen-distance)/maxLen. The
// distance here weighs a substitution as a delete plus an insert, so short
// names differing in a couple of letters ("maria lopez" vs "mario lopes")
// stay under the acceptance threshold instead of scoring like near-matches.
// Equal strings score 1.
func Similarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	score := float64(maxLen-indelDistance(a, b)) / float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// indelDistance is the same DP table as Levenshtein with substitutions priced
// at two edits.
func indelDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		current := prev[0]
		prev[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 2
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min3(prev[j]+1, prev[j-1]+1, current+cost)
			current = prev[j]
			prev[j] = next
		}
	}
	return prev[len(rb)]
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Package scoring implements the candidate/job match engine: five factor
// scorers, a free-text experience range parser, weighted aggregation into a
// final match score, and explanation rendering. All scoring is pure; given
// the same candidate and jobs the output is identical byte for byte.
package scoring

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// normalize lowercases and trims a string before fuzzy comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// similarity returns the partial-ratio score in [0,100] between two strings
// after normalization: how well the shorter string aligns against the best
// matching substring of the longer one.
func similarity(a, b string) int {
	return fuzzy.PartialRatio(normalize(a), normalize(b))
}

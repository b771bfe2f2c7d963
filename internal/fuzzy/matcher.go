// Package fuzzy ranks short names against a typed input, for "did you mean"
// hints when a genre or theme name does not resolve.
package fuzzy

import (
	"slices"
	"unicode"

	"golang.org/x/text/cases"
)

// below this a candidate is not worth suggesting
const SuggestThreshold = 40

type MatchResult struct {
	Text  string
	Score int
	Index int
}

var folder = cases.Fold()

// Match scores how well pattern matches text as an in-order subsequence,
// from 0 (no match) to 100 (equal after case folding).
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(folder.String(pattern))
	t := []rune(folder.String(text))

	if slices.Equal(p, t) {
		return 100
	}
	if len(p) > len(t) {
		return 0
	}

	positions := subsequence(p, t)
	if positions == nil {
		return 0
	}

	return min(max(score(p, t, positions), 0), 99)
}

// MatchMany returns every text scoring at least threshold, best first. Ties
// keep input order.
func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))
	for i, text := range texts {
		if s := Match(pattern, text); s >= threshold {
			results = append(results, MatchResult{Text: text, Score: s, Index: i})
		}
	}

	slices.SortStableFunc(results, func(a, b MatchResult) int {
		return b.Score - a.Score
	})
	return results
}

// Suggest returns the best candidate above SuggestThreshold
func Suggest(input string, candidates []string) (string, bool) {
	results := MatchMany(input, candidates, SuggestThreshold)
	if len(results) == 0 {
		return "", false
	}
	return results[0].Text, true
}

// positions of each pattern rune in text, nil when pattern is not a subsequence
func subsequence(pattern, text []rune) []int {
	positions := make([]int, 0, len(pattern))
	pi := 0
	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if pattern[pi] == text[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(pattern) {
		return nil
	}
	return positions
}

func score(pattern, text []rune, positions []int) int {
	s := 40.0

	// coverage of the text
	s += float64(len(pattern)) / float64(len(text)) * 30

	if positions[0] == 0 {
		s += 15
	}

	run := longestRun(positions)
	s += float64(run) / float64(len(pattern)) * 20

	// gaps between matched runes
	s -= float64(len(pattern)-run) * 4

	boundaries := 0
	for _, pos := range positions {
		if pos == 0 || !isWordRune(text[pos-1]) {
			boundaries++
		}
	}
	if boundaries > 1 {
		s += 5
	}

	return int(s)
}

func longestRun(positions []int) int {
	best, cur := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			cur++
			best = max(best, cur)
		} else {
			cur = 1
		}
	}
	return best
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

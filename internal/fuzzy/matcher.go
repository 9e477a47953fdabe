package fuzzy

import (
	"sort"
	"strings"
)

// Pool entries scoring below this floor are never suggested.
const minSuggestionScore = 0.4

// Matcher answers typo-tolerant text questions over already-loaded strings.
// It holds no mutable state: one shared instance and a fresh instance per
// call behave identically, and both are safe for concurrent use.
type Matcher struct {
	suggestionFloor float64
}

func NewMatcher() *Matcher {
	return &Matcher{suggestionFloor: minSuggestionScore}
}

// MatchesAny reports whether any field matches query: a literal substring
// hit (after folding) short-circuits true regardless of threshold, else the
// field must reach the similarity threshold. Empty query never matches.
func (m *Matcher) MatchesAny(query string, threshold float64, fields ...string) bool {
	q := Fold(query)
	if q == "" {
		return false
	}
	for _, f := range fields {
		ff := Fold(f)
		if ff == "" {
			continue
		}
		if strings.Contains(ff, q) {
			return true
		}
		if foldedSimilarity(ff, q) >= threshold {
			return true
		}
	}
	return false
}

// BestScore returns the maximum similarity between query and any
// whitespace-delimited token window of corpus whose token count is within
// one of the query's. A literal substring hit scores 1. Empty inputs score 0.
func (m *Matcher) BestScore(corpus, query string) float64 {
	q := Fold(query)
	c := Fold(corpus)
	if q == "" || c == "" {
		return 0
	}
	if strings.Contains(c, q) {
		return 1
	}

	tokens := strings.Fields(c)
	width := len(strings.Fields(q))

	low := width - 1
	if low < 1 {
		low = 1
	}

	best := 0.0
	for size := low; size <= width+1; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			window := strings.Join(tokens[i:i+size], " ")
			if s := foldedSimilarity(window, q); s > best {
				best = s
			}
		}
	}
	return best
}

// Suggestions returns up to limit distinct pool entries ordered by
// descending score against query, ties broken by pool order. Entries below
// the suggestion floor are dropped. A non-positive limit, an empty pool or
// an empty query all yield an empty list.
func (m *Matcher) Suggestions(query string, pool []string, limit int) []string {
	if limit <= 0 || len(pool) == 0 {
		return []string{}
	}
	if Fold(query) == "" {
		return []string{}
	}

	type scored struct {
		value string
		score float64
	}

	seen := make(map[string]struct{}, len(pool))
	candidates := make([]scored, 0, len(pool))
	for _, p := range pool {
		folded := Fold(p)
		if folded == "" {
			continue
		}
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}

		s := m.BestScore(p, query)
		if s < m.suggestionFloor {
			continue
		}
		candidates = append(candidates, scored{value: p, score: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.value)
	}
	return out
}

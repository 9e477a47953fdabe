// Package search orders searchable records against a free-text query,
// combining literal substring hits with fuzzy scores.
package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"talent-match/internal/fuzzy"
)

var ErrNilFieldsOf = errors.New("nil fieldsOf accessor")

// Rank filters and orders items by how well their text fields match query.
// Substring hits always rank before fuzzy-only hits; within each group
// items sort by descending best score, stable for equal scores. Items with
// no substring hit and a best score below threshold are dropped. An empty
// query means "no filter": the input comes back unchanged in order.
//
// Rank polls ctx between items so a superseded search stops wasting work;
// it returns ctx.Err() when cancelled.
func Rank[T any](ctx context.Context, m *fuzzy.Matcher, query string, items []T, fieldsOf func(T) []string, threshold float64) ([]T, error) {
	if fieldsOf == nil {
		return nil, ErrNilFieldsOf
	}

	out := make([]T, len(items))
	copy(out, items)

	q := fuzzy.Fold(query)
	if q == "" {
		return out, nil
	}

	type ranked struct {
		idx       int
		substring bool
		score     float64
	}

	hits := make([]ranked, 0, len(items))
	for i := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		substring := false
		best := 0.0
		for _, f := range fieldsOf(items[i]) {
			folded := fuzzy.Fold(f)
			if folded == "" {
				continue
			}
			if strings.Contains(folded, q) {
				substring = true
			}
			if s := m.BestScore(f, query); s > best {
				best = s
			}
		}

		if !substring && best < threshold {
			continue
		}
		hits = append(hits, ranked{idx: i, substring: substring, score: best})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].substring != hits[j].substring {
			return hits[i].substring
		}
		return hits[i].score > hits[j].score
	})

	res := make([]T, 0, len(hits))
	for _, h := range hits {
		res = append(res, items[h.idx])
	}
	return res, nil
}

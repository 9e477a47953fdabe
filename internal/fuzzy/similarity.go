package fuzzy

// Similarity returns a normalized edit-distance similarity between a and b
// in [0,1]: 1 - lev(a,b)/max(len(a),len(b)) over folded runes. Both empty
// yields 1, exactly one empty yields 0. Symmetric and pure.
func Similarity(a, b string) float64 {
	return foldedSimilarity(Fold(a), Fold(b))
}

func foldedSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// Single-row DP over runes.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur := prev[0]
		prev[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			next := cur + cost
			if del := prev[j] + 1; del < next {
				next = del
			}
			if ins := prev[j-1] + 1; ins < next {
				next = ins
			}
			cur = prev[j]
			prev[j] = next
		}
	}
	return prev[len(b)]
}

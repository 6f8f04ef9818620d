package fuzzy

import (
	"sort"
	"strings"
)

// Distance returns the edit distance between a and b counted in runes.
// Insertions, deletions, substitutions and swaps of two adjacent runes
// each cost one.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	// Three rolling rows: two back for swaps, previous, current
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d := min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d = min(d, prev2[j-2]+1)
			}
			cur[j] = d
		}
		prev2, prev, cur = prev, cur, prev2
	}

	return prev[lb]
}

// maxTypos is the largest distance still treated as a typo of query.
func maxTypos(query string) int {
	return max(1, len([]rune(query))/3)
}

// closest returns candidates within typo distance of query, nearest first.
func closest(query string, candidates []string, limit int) []string {
	type scored struct {
		text string
		dist int
	}

	limitDist := maxTypos(query)
	var hits []scored
	for _, c := range candidates {
		if d := Distance(query, strings.ToLower(c)); d <= limitDist {
			hits = append(hits, scored{text: c, dist: d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].text < hits[j].text
	})

	if limit > 0 && limit < len(hits) {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.text
	}
	return out
}

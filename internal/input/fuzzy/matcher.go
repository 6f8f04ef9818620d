package fuzzy

import (
	"sort"
	"strings"
	"sync"
)

// Item represents a searchable item.
type Item struct {
	// Text is the string to match against.
	Text string

	// Data is arbitrary data associated with this item.
	Data any
}

// Result represents a match result with scoring information.
type Result struct {
	// Item is the matched item.
	Item Item

	// Score is the match score (higher is better).
	Score int

	// Matches contains the rune indices of matched characters.
	Matches []int
}

// Options configures the matcher behavior.
type Options struct {
	// MinScore is the minimum score for a match to be included.
	MinScore int

	// CaseSensitive enables case-sensitive matching.
	CaseSensitive bool
}

// DefaultOptions returns case-insensitive matching with no score floor.
func DefaultOptions() Options {
	return Options{}
}

// Matcher performs fuzzy string matching. It is safe for concurrent use.
type Matcher struct {
	mu      sync.RWMutex
	scorer  Scorer
	options Options
}

// NewMatcher creates a new fuzzy matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	return &Matcher{
		scorer:  DefaultScorer{},
		options: opts,
	}
}

// SetScorer sets a custom scoring algorithm.
func (m *Matcher) SetScorer(scorer Scorer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scorer = scorer
}

// Match finds items matching the query and returns results sorted by score.
// A limit of zero or less returns every match. An empty query matches
// nothing.
func (m *Matcher) Match(query string, items []Item, limit int) []Result {
	query = strings.TrimSpace(query)
	if !m.options.CaseSensitive {
		query = strings.ToLower(query)
	}
	if query == "" {
		return nil
	}

	queryRunes := []rune(query)

	results := make([]Result, 0, len(items))
	for _, item := range items {
		score, matches := m.matchItem(queryRunes, item.Text)
		if score > m.options.MinScore {
			results = append(results, Result{
				Item:    item,
				Score:   score,
				Matches: matches,
			})
		}
	}

	// Sort by score descending, then by text for deterministic ordering
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Text < results[j].Item.Text
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// matchItem scores a single item against the query.
// Returns score and matched character indices (rune indices).
func (m *Matcher) matchItem(queryRunes []rune, text string) (int, []int) {
	if text == "" || len(queryRunes) == 0 {
		return 0, nil
	}

	originalRunes := []rune(text)
	textRunes := originalRunes
	if !m.options.CaseSensitive {
		textRunes = []rune(strings.ToLower(text))
	}

	// Greedy left-to-right scan
	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(textRunes) && queryIdx < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}

	// All query characters must match
	if queryIdx != len(queryRunes) {
		return 0, nil
	}

	m.mu.RLock()
	scorer := m.scorer
	m.mu.RUnlock()

	return scorer.Score(queryRunes, originalRunes, textRunes, matches), matches
}

// Suggest returns up to limit candidates that best match query. Subsequence
// matches come first; when there are none, candidates within a small edit
// distance are returned so that typos like "qiut" still find "quit".
func Suggest(query string, candidates []string, limit int) []string {
	items := make([]Item, len(candidates))
	for i, c := range candidates {
		items[i] = Item{Text: c}
	}

	results := NewMatcher(DefaultOptions()).Match(query, items, limit)
	if len(results) == 0 {
		q := strings.ToLower(strings.TrimSpace(query))
		if q == "" {
			return nil
		}
		return closest(q, candidates, limit)
	}

	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Item.Text
	}
	return out
}

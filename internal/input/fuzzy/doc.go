// Package fuzzy ranks candidate strings against a query by subsequence
// match.
//
// A candidate matches when every query rune appears in it in order. Matches
// are scored higher for consecutive runes, word boundary hits (after '_',
// '-' or a camelCase transition), a prefix match and shorter candidates.
//
//	m := fuzzy.NewMatcher(fuzzy.DefaultOptions())
//	results := m.Match("tgl_coll", items, 3)
//
// Suggest wraps this for "did you mean" hints on mistyped names.
package fuzzy

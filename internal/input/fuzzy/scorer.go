package fuzzy

import "unicode"

// Scorer calculates match scores. Higher scores indicate better matches.
//
// queryRunes is the normalized query, originalRunes the text with case
// preserved, textRunes the normalized text and matches the rune indices of
// matched characters in text.
type Scorer interface {
	Score(queryRunes, originalRunes, textRunes []rune, matches []int) int
}

// Weights used by DefaultScorer.
const (
	baseScore            = 100
	consecutiveBonus     = 20
	wordBoundaryBonus    = 15
	prefixBonus          = 25
	exactPrefixBonus     = 50
	gapPenalty           = 2
	lengthBonusThreshold = 20
)

// DefaultScorer rewards consecutive, boundary and prefix matches and
// penalizes gaps.
type DefaultScorer struct{}

// Score implements the Scorer interface.
func (DefaultScorer) Score(queryRunes, originalRunes, textRunes []rune, matches []int) int {
	if len(matches) == 0 {
		return 0
	}

	score := baseScore

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += consecutiveBonus
		}
	}

	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			score += wordBoundaryBonus
		}
	}

	if matches[0] == 0 {
		score += prefixBonus
	} else {
		score -= matches[0]
	}

	if len(matches) > 1 {
		if gap := matches[len(matches)-1] - matches[0] - len(matches) + 1; gap > 0 {
			score -= gap * gapPenalty
		}
	}

	if n := len(textRunes); n < lengthBonusThreshold {
		score += lengthBonusThreshold - n
	}

	if hasPrefix(textRunes, queryRunes) {
		score += exactPrefixBonus
	}

	// Any match scores at least 1
	if score < 1 {
		score = 1
	}
	return score
}

func hasPrefix(text, prefix []rune) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if text[i] != r {
			return false
		}
	}
	return true
}

// isWordBoundary checks if the rune at idx starts a word.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, curr := runes[idx-1], runes[idx]

	// After a separator such as '_' or '-'
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}

	// camelCase transition
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

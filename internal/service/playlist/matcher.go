package playlist

import "github.com/heartmarshall/phrasecast/internal/domain"

// DefaultMaxPhraseLength bounds phrase candidates when no limit is configured.
const DefaultMaxPhraseLength = 10

// Match finds phrases greedily from left to right, always preferring the
// longest candidate at each position. Punctuation is never part of a phrase
// and never covered by a match. The returned matches are ordered by Start and
// never overlap.
func Match(tokens []domain.Token, manifest *domain.Manifest, maxPhraseLen int) []domain.Match {
	if maxPhraseLen <= 0 {
		maxPhraseLen = DefaultMaxPhraseLength
	}

	var matches []domain.Match
	for i := 0; i < len(tokens); {
		if tokens[i].IsPunct() {
			i++
			continue
		}

		n, phrase := longestAt(tokens, i, manifest, maxPhraseLen)
		if n == 0 {
			i++
			continue
		}

		matches = append(matches, domain.Match{Phrase: phrase, Start: i, End: i + n})
		i += n
	}
	return matches
}

// longestAt returns the length and text of the longest matchable phrase
// starting at i, or zero when none exists.
func longestAt(tokens []domain.Token, i int, manifest *domain.Manifest, maxPhraseLen int) (int, string) {
	limit := min(maxPhraseLen, len(tokens)-i)

	// Candidates interrupted by punctuation are skipped, so only the leading
	// run of words can ever form a phrase.
	run := 0
	for run < limit && !tokens[i+run].IsPunct() {
		run++
	}

	for n := run; n >= 1; n-- {
		phrase := domain.JoinTokens(tokens[i : i+n])
		if manifest.IsMatchable(phrase) {
			return n, phrase
		}
	}
	return 0, ""
}

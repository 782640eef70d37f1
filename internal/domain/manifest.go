package domain

import (
	"math"
	"sort"
)

// Manifest is the read-only clip catalog loaded once at startup.
type Manifest struct {
	// PhraseMap is the set of known phrases (space-joined lowercase words).
	PhraseMap map[string]bool
	// PhraseClips maps a phrase to its candidate clips.
	PhraseClips map[string][]Clip
	// StaticWords maps a slugified word to its fallback clip.
	StaticWords map[string]Clip
	// StaticPunctuation maps a literal punctuation character to its clip.
	StaticPunctuation map[string]Clip

	FixedTokens []Token
	FixedText   string
}

// PhrasePool returns the clip pool for a phrase. A phrase is matchable only
// when it is known AND has at least one clip.
func (m *Manifest) PhrasePool(phrase string) []Clip {
	if m == nil || !m.PhraseMap[phrase] {
		return nil
	}
	return m.PhraseClips[phrase]
}

// IsMatchable reports whether phrase can produce a match.
func (m *Manifest) IsMatchable(phrase string) bool {
	return len(m.PhrasePool(phrase)) > 0
}

// ManifestSummary holds catalog counts for health and inspection output.
type ManifestSummary struct {
	Phrases           int `json:"phrases"`
	MatchablePhrases  int `json:"matchablePhrases"`
	PhraseClips       int `json:"phraseClips"`
	StaticWords       int `json:"staticWords"`
	StaticPunctuation int `json:"staticPunctuation"`
	FixedTokens       int `json:"fixedTokens"`
}

// Summary counts the manifest contents.
func (m *Manifest) Summary() ManifestSummary {
	if m == nil {
		return ManifestSummary{}
	}
	s := ManifestSummary{
		Phrases:           len(m.PhraseMap),
		StaticWords:       len(m.StaticWords),
		StaticPunctuation: len(m.StaticPunctuation),
		FixedTokens:       len(m.FixedTokens),
	}
	for phrase, clips := range m.PhraseClips {
		s.PhraseClips += len(clips)
		if m.PhraseMap[phrase] && len(clips) > 0 {
			s.MatchablePhrases++
		}
	}
	return s
}

// ClipsLongerThan lists the filenames of catalog clips whose duration, rounded
// to the nearest second, exceeds limit. The result is sorted and deduplicated.
func (m *Manifest) ClipsLongerThan(limit int) []string {
	if m == nil {
		return nil
	}
	seen := make(map[string]bool)
	check := func(c Clip) {
		if math.Round(c.Duration) > float64(limit) {
			seen[c.Filename] = true
		}
	}
	for _, clips := range m.PhraseClips {
		for _, c := range clips {
			check(c)
		}
	}
	for _, c := range m.StaticWords {
		check(c)
	}
	for _, c := range m.StaticPunctuation {
		check(c)
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

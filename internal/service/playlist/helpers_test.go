package playlist

import (
	"github.com/heartmarshall/phrasecast/internal/domain"
)

// manifestWith builds a manifest where every listed phrase is known and owns
// the given clips.
func manifestWith(phrases map[string][]domain.Clip) *domain.Manifest {
	m := &domain.Manifest{
		PhraseMap:         make(map[string]bool, len(phrases)),
		PhraseClips:       make(map[string][]domain.Clip, len(phrases)),
		StaticWords:       map[string]domain.Clip{},
		StaticPunctuation: map[string]domain.Clip{},
	}
	for phrase, clips := range phrases {
		m.PhraseMap[phrase] = true
		m.PhraseClips[phrase] = clips
	}
	return m
}

func clip(name string, duration float64) domain.Clip {
	return domain.Clip{Filename: name, Duration: duration}
}

func toks(words ...string) []domain.Token {
	out := make([]domain.Token, len(words))
	for i, w := range words {
		out[i] = domain.Token(w)
	}
	return out
}

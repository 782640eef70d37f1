package playlist

import "github.com/heartmarshall/phrasecast/internal/domain"

// ScriptResult is the ordered timeline plus the token positions that could
// not be resolved to any clip.
type ScriptResult struct {
	Items   []domain.ScriptItem
	Dropped []int
}

// BuildScript walks the token stream and emits one item per match and one
// per uncovered token that has a fallback clip. Phrase clips are selected
// with seed+phrase so each distinct phrase is randomized independently,
// while the shared used set keeps repeats of a phrase from reusing clips.
// Missing clips never fail the build: the item is skipped, and uncovered
// tokens without a fallback are reported in Dropped.
func BuildScript(tokens []domain.Token, matches []domain.Match, manifest *domain.Manifest, seed string) ScriptResult {
	starts := make(map[int]domain.Match, len(matches))
	covered := make([]bool, len(tokens))
	for _, m := range matches {
		starts[m.Start] = m
		for j := max(m.Start, 0); j < m.End && j < len(tokens); j++ {
			covered[j] = true
		}
	}

	sel := NewSelector()
	res := ScriptResult{Items: make([]domain.ScriptItem, 0, len(tokens))}

	for i := 0; i < len(tokens); {
		if m, ok := starts[i]; ok && m.End > i {
			if clip, ok := sel.Select(manifest.PhrasePool(m.Phrase), seed+m.Phrase); ok {
				res.Items = append(res.Items, domain.ScriptItem{
					Text:     m.Phrase,
					Filename: clip.Filename,
					Duration: clip.Duration,
					Type:     domain.ClipTypePhrase,
				})
			}
			i = m.End
			continue
		}

		if !covered[i] {
			if clip, ok := resolveStatic(manifest, tokens[i]); ok {
				res.Items = append(res.Items, domain.ScriptItem{
					Text:     string(tokens[i]),
					Filename: clip.Filename,
					Duration: clip.Duration,
					Type:     domain.ClipTypeStatic,
				})
			} else {
				res.Dropped = append(res.Dropped, i)
			}
		}
		i++
	}
	return res
}

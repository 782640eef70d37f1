package playlist

import (
	"strings"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// defaultPunctuation is used for punctuation without a dedicated clip.
const defaultPunctuation = "."

var punctuationVariants = strings.NewReplacer(
	"\u201C", `"`, "\u201D", `"`, "\u201E", `"`, "\u201F", `"`,
	"\u2018", "'", "\u2019", "'", "\u201A", "'", "\u201B", "'", "`", "'", "\u00B4", "'",
	"\u2013", "-", "\u2014", "-",
)

// resolveStatic finds the fallback clip for a single unmatched token.
// Punctuation falls back to the period clip; words have no further fallback.
func resolveStatic(manifest *domain.Manifest, tok domain.Token) (domain.Clip, bool) {
	if manifest == nil {
		return domain.Clip{}, false
	}

	if tok.IsPunct() {
		key := punctuationVariants.Replace(string(tok))
		if clip, ok := manifest.StaticPunctuation[key]; ok {
			return clip, true
		}
		clip, ok := manifest.StaticPunctuation[defaultPunctuation]
		return clip, ok
	}

	clip, ok := manifest.StaticWords[Slugify(string(tok))]
	return clip, ok
}

// Slugify replaces every character outside [a-z0-9] with an underscore.
func Slugify(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

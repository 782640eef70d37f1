package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a normalized unit of text: a word or a single punctuation mark.
type Token string

// IsPunct reports whether the token is a punctuation token.
func (t Token) IsPunct() bool {
	if t == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(string(t))
	return !isWordRune(r)
}

// invisibleRunes are dropped before any other processing.
var invisibleRunes = map[rune]bool{
	'\uFEFF': true, // byte order mark
	'\u200B': true, // zero width space
	'\u200C': true, // zero width non-joiner
	'\u200D': true, // zero width joiner
	'\u2060': true, // word joiner
}

// typographicRunes folds quote, prime and dash variants to ASCII.
var typographicRunes = map[rune]rune{
	'\u2018': '\'', // left single quotation mark
	'\u2019': '\'', // right single quotation mark
	'\u201A': '\'', // single low-9 quotation mark
	'\u201B': '\'', // single high-reversed-9 quotation mark
	'\u2032': '\'', // prime
	'\u0060': '\'', // grave accent
	'\u00B4': '\'', // acute accent
	'\u201C': '"',  // left double quotation mark
	'\u201D': '"',  // right double quotation mark
	'\u201E': '"',  // double low-9 quotation mark
	'\u201F': '"',  // double high-reversed-9 quotation mark
	'\u2033': '"',  // double prime
	'\u2013': '-',  // en dash
	'\u2014': '-',  // em dash
}

// isCombiningDiacritic matches the Combining Diacritical Marks block.
func isCombiningDiacritic(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// FoldText canonicalizes raw text ahead of tokenization:
//   - drops BOM and zero-width characters
//   - maps typographic quotes, primes and dashes to ASCII
//   - decomposes (NFD) and strips combining diacritics
//   - converts to lowercase
//
// Quote mapping runs before tokenization so that a curly apostrophe inside
// a word stays part of the word.
func FoldText(raw string) string {
	mapped := strings.Map(func(r rune) rune {
		if invisibleRunes[r] {
			return -1
		}
		if ascii, ok := typographicRunes[r]; ok {
			return ascii
		}
		return r
	}, raw)

	// Chained transformers carry buffers, so one is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningDiacritic)))
	folded, _, err := transform.String(t, mapped)
	if err != nil {
		folded = mapped
	}
	return strings.ToLower(folded)
}

// Tokenize folds raw text and splits it into word and punctuation tokens.
// A maximal run of word runes is one word; any other non-space rune is a
// token of its own; whitespace only separates.
func Tokenize(raw string) []Token {
	text := FoldText(raw)
	tokens := make([]Token, 0, len(text)/4)

	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token(text[start:i]))
			start = -1
		}
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, Token(string(r)))
	}
	if start >= 0 {
		tokens = append(tokens, Token(text[start:]))
	}
	return tokens
}

// JoinTokens joins tokens with single spaces.
func JoinTokens(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(t))
	}
	return b.String()
}

// isWordRune classifies runes that may appear inside a word token. Marks
// outside the stripped diacritic block stay attached to their base letter.
func isWordRune(r rune) bool {
	switch {
	case r == '\'' || r == '-' || r == '_':
		return true
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
		return true
	}
	return false
}

package playlist

import "github.com/heartmarshall/phrasecast/internal/domain"

// Result is the output of one playlist generation.
type Result struct {
	Tokens   []domain.Token
	Matches  []domain.Match
	Script   []domain.ScriptItem
	Dropped  []int
	Playlist string
	Stats    domain.Stats
}

package domain

import (
	"math"
	"time"
)

// Session is one generated playlist together with the data it was built from.
type Session struct {
	ID        string       `json:"sessionId"`
	CreatedAt time.Time    `json:"createdAt"`
	Playlist  string       `json:"-"`
	Script    []ScriptItem `json:"script"`
	Tokens    []Token      `json:"tokens"`
	Matches   []Match      `json:"matches"`
	Stats     Stats        `json:"stats"`
}

// Stats summarises a generated script.
type Stats struct {
	TotalTokens   int     `json:"totalTokens"`
	MatchedPhrase int     `json:"matchedPhrases"`
	TotalClips    int     `json:"totalClips"`
	PhraseClips   int     `json:"phraseClips"`
	StaticClips   int     `json:"staticClips"`
	DroppedTokens int     `json:"droppedTokens"`
	TotalDuration float64 `json:"totalDuration"`
}

// ComputeStats reduces a script into summary counts. TotalDuration excludes
// the opener segment and is rounded to milliseconds.
func ComputeStats(tokens []Token, matches []Match, script []ScriptItem, dropped int) Stats {
	s := Stats{
		TotalTokens:   len(tokens),
		MatchedPhrase: len(matches),
		TotalClips:    len(script),
		DroppedTokens: dropped,
	}
	var total float64
	for _, item := range script {
		switch item.Type {
		case ClipTypePhrase:
			s.PhraseClips++
		case ClipTypeStatic:
			s.StaticClips++
		}
		total += item.Duration
	}
	s.TotalDuration = math.Round(total*1000) / 1000
	return s
}

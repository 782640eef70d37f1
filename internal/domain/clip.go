package domain

// ClipType distinguishes phrase clips from single-token fallbacks.
type ClipType string

const (
	ClipTypePhrase ClipType = "phrase"
	ClipTypeStatic ClipType = "static"
)

// String returns the string representation of the ClipType.
func (t ClipType) String() string { return string(t) }

// IsValid checks if the ClipType is a known value.
func (t ClipType) IsValid() bool {
	switch t {
	case ClipTypePhrase, ClipTypeStatic:
		return true
	}
	return false
}

// Dir returns the storage directory under /hls_clips for clips of this type.
func (t ClipType) Dir() string {
	if t == ClipTypePhrase {
		return "trimmed"
	}
	return "static"
}

// Clip is an immutable reference to a pre-cut media segment.
type Clip struct {
	Filename string   `json:"filename" yaml:"filename"`
	Duration float64  `json:"duration" yaml:"duration"`
	Type     ClipType `json:"type,omitempty" yaml:"type,omitempty"`
}

// Match is a phrase found in the token stream over [Start, End).
type Match struct {
	Phrase string `json:"phrase"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Len returns the number of tokens covered by the match.
func (m Match) Len() int { return m.End - m.Start }

// ScriptItem is one entry of the playback timeline.
type ScriptItem struct {
	Text     string   `json:"text"`
	Filename string   `json:"filename"`
	Duration float64  `json:"duration"`
	Type     ClipType `json:"type"`
}

package domain

import "testing"

func TestComputeStats(t *testing.T) {
	t.Parallel()

	tokens := []Token{"hello", "world", "foo", "bar"}
	matches := []Match{{Phrase: "hello world", Start: 0, End: 2}}
	script := []ScriptItem{
		{Text: "hello world", Filename: "hw.ts", Duration: 2.0, Type: ClipTypePhrase},
		{Text: "foo", Filename: "foo.ts", Duration: 0.5, Type: ClipTypeStatic},
	}

	got := ComputeStats(tokens, matches, script, 1)
	want := Stats{
		TotalTokens:   4,
		MatchedPhrase: 1,
		TotalClips:    2,
		PhraseClips:   1,
		StaticClips:   1,
		DroppedTokens: 1,
		TotalDuration: 2.5,
	}
	if got != want {
		t.Errorf("ComputeStats() = %+v, want %+v", got, want)
	}
}

func TestComputeStats_RoundsDuration(t *testing.T) {
	t.Parallel()

	script := []ScriptItem{
		{Duration: 0.1, Type: ClipTypeStatic},
		{Duration: 0.2, Type: ClipTypeStatic},
	}
	if got := ComputeStats(nil, nil, script, 0).TotalDuration; got != 0.3 {
		t.Errorf("TotalDuration = %v, want 0.3", got)
	}
}

func TestClipType_Dir(t *testing.T) {
	t.Parallel()

	if got := ClipTypePhrase.Dir(); got != "trimmed" {
		t.Errorf("phrase dir = %q, want trimmed", got)
	}
	if got := ClipTypeStatic.Dir(); got != "static" {
		t.Errorf("static dir = %q, want static", got)
	}
	if ClipType("video").IsValid() {
		t.Error("unknown clip type should be invalid")
	}
}

package domain

import (
	"reflect"
	"testing"
)

func testManifest() *Manifest {
	return &Manifest{
		PhraseMap: map[string]bool{
			"good morning": true,
			"orphan":       true,
			"empty pool":   true,
		},
		PhraseClips: map[string][]Clip{
			"good morning": {{Filename: "gm1.ts", Duration: 1.5}, {Filename: "gm2.ts", Duration: 1.2}},
			"empty pool":   {},
			"unlisted":     {{Filename: "u.ts", Duration: 1}},
		},
		StaticWords:       map[string]Clip{"foo": {Filename: "foo.ts", Duration: 0.5}},
		StaticPunctuation: map[string]Clip{".": {Filename: "dot.ts", Duration: 0.3}},
	}
}

func TestManifest_IsMatchable(t *testing.T) {
	t.Parallel()

	m := testManifest()
	tests := []struct {
		phrase string
		want   bool
	}{
		{"good morning", true},
		{"orphan", false},     // known phrase, no clips
		{"empty pool", false}, // known phrase, empty pool
		{"unlisted", false},   // clips, but not in phrase map
		{"missing", false},
	}
	for _, tt := range tests {
		if got := m.IsMatchable(tt.phrase); got != tt.want {
			t.Errorf("IsMatchable(%q) = %v, want %v", tt.phrase, got, tt.want)
		}
	}
}

func TestManifest_NilIsSafe(t *testing.T) {
	t.Parallel()

	var m *Manifest
	if m.IsMatchable("anything") {
		t.Error("nil manifest should match nothing")
	}
	if got := m.Summary(); got != (ManifestSummary{}) {
		t.Errorf("nil summary: got %+v", got)
	}
}

func TestManifest_Summary(t *testing.T) {
	t.Parallel()

	got := testManifest().Summary()
	want := ManifestSummary{
		Phrases:           3,
		MatchablePhrases:  1,
		PhraseClips:       3,
		StaticWords:       1,
		StaticPunctuation: 1,
	}
	if got != want {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
}

func TestManifest_ClipsLongerThan(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		PhraseClips: map[string][]Clip{
			"a": {{Filename: "long.ts", Duration: 12.4}, {Filename: "edge.ts", Duration: 10.49}},
			"b": {{Filename: "long.ts", Duration: 12.4}},
		},
		StaticWords:       map[string]Clip{"w": {Filename: "rounds-up.ts", Duration: 10.5}},
		StaticPunctuation: map[string]Clip{".": {Filename: "dot.ts", Duration: 0.3}},
	}

	got := m.ClipsLongerThan(10)
	want := []string{"long.ts", "rounds-up.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClipsLongerThan(10) = %v, want %v", got, want)
	}
	if got := m.ClipsLongerThan(20); len(got) != 0 {
		t.Errorf("ClipsLongerThan(20) = %v, want none", got)
	}

	var nilManifest *Manifest
	if got := nilManifest.ClipsLongerThan(1); got != nil {
		t.Errorf("nil manifest = %v, want nil", got)
	}
}

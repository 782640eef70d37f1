package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

var (
	bold   = lipgloss.NewStyle().Bold(true).Inline(true)
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)
	faint  = lipgloss.NewStyle().Faint(true).Inline(true)
)

func writeStats(w io.Writer, sessionID string, s domain.Stats) {
	fmt.Fprintln(w, bold.Render("SESSION:")+" "+sessionID)
	fmt.Fprintf(w, "  %-16s %d\n", "tokens:", s.TotalTokens)
	fmt.Fprintf(w, "  %-16s %s\n", "phrase matches:", green.Render(fmt.Sprint(s.MatchedPhrase)))
	fmt.Fprintf(w, "  %-16s %d %s\n", "clips:", s.TotalClips,
		faint.Render(fmt.Sprintf("(%d phrase, %d static)", s.PhraseClips, s.StaticClips)))

	dropped := fmt.Sprint(s.DroppedTokens)
	if s.DroppedTokens > 0 {
		dropped = yellow.Render(dropped)
	}
	fmt.Fprintf(w, "  %-16s %s\n", "dropped tokens:", dropped)
	fmt.Fprintf(w, "  %-16s %.3fs\n", "duration:", s.TotalDuration)
}

func writeSummary(w io.Writer, path string, s domain.ManifestSummary) {
	fmt.Fprintln(w, bold.Render("MANIFEST:")+" "+path)
	rows := []struct {
		label string
		value int
	}{
		{"phrases:", s.Phrases},
		{"matchable:", s.MatchablePhrases},
		{"phrase clips:", s.PhraseClips},
		{"static words:", s.StaticWords},
		{"punctuation:", s.StaticPunctuation},
		{"fixed tokens:", s.FixedTokens},
	}
	for _, r := range rows {
		value := fmt.Sprint(r.value)
		if r.value == 0 {
			value = yellow.Render(value)
		}
		fmt.Fprintf(w, "  %-16s %s\n", r.label, value)
	}
}

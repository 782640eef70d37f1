package playlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

const (
	// ContentType is the media type of a serialized playlist.
	ContentType = "application/vnd.apple.mpegurl"

	clipsRoot             = "/hls_clips/"
	defaultTargetDuration = 10
)

// Serializer renders scripts as HLS VOD playlists.
type Serializer struct {
	// BaseURL makes clip URLs absolute when set; otherwise they are site-relative.
	BaseURL        string
	Opener         domain.Clip
	TargetDuration int
	Now            func() time.Time
}

// Serialize renders the playlist for script. Every segment, the opener
// included, sits behind a discontinuity tag because clips come from unrelated
// sources and never share timestamps.
func (s Serializer) Serialize(script []domain.ScriptItem, sessionID string) string {
	target := s.TargetDuration
	if target <= 0 {
		target = defaultTargetDuration
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	b.WriteString("#EXT-X-VERSION:3\n")
	fmt.Fprintf(&b, "#EXT-X-TARGETDURATION:%d\n", target)
	b.WriteString("#EXT-X-PLAYLIST-TYPE:VOD\n")
	fmt.Fprintf(&b, "# Session: %s\n", sessionID)
	fmt.Fprintf(&b, "# Generated: %s\n", now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Clips: %d\n", len(script))

	var total float64
	if s.Opener.Filename != "" {
		writeSegment(&b, s.Opener.Duration, s.OpenerURL())
		total += s.Opener.Duration
	}
	for _, item := range script {
		writeSegment(&b, item.Duration, s.ClipURL(item.Type, item.Filename))
		total += item.Duration
	}

	fmt.Fprintf(&b, "# Total duration: %.3fs\n", total)
	b.WriteString("#EXT-X-ENDLIST\n")
	return b.String()
}

// ClipURL resolves the URL of a clip of the given type.
func (s Serializer) ClipURL(t domain.ClipType, filename string) string {
	return s.BaseURL + clipsRoot + t.Dir() + "/" + filename
}

// OpenerURL resolves the opener clip. A filename containing a slash is taken
// as a path below /hls_clips/; a bare name lives with the static clips.
func (s Serializer) OpenerURL() string {
	name := strings.TrimPrefix(s.Opener.Filename, "/")
	if strings.Contains(name, "/") {
		return s.BaseURL + clipsRoot + name
	}
	return s.ClipURL(domain.ClipTypeStatic, name)
}

func writeSegment(b *strings.Builder, duration float64, url string) {
	b.WriteString("#EXT-X-DISCONTINUITY\n")
	fmt.Fprintf(b, "#EXTINF:%.3f,\n", duration)
	b.WriteString(url)
	b.WriteByte('\n')
}

// Package manifest loads the clip catalog from disk.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Format selects the manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the encoding from the file extension; anything that
// is not .yaml/.yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// fileClip is a clip as stored in the manifest file.
type fileClip struct {
	Filename string  `json:"filename" yaml:"filename"`
	Duration float64 `json:"duration" yaml:"duration"`
}

type fileStaticClips struct {
	Words       map[string]fileClip `json:"words"       yaml:"words"`
	Punctuation map[string]fileClip `json:"punctuation" yaml:"punctuation"`
}

// fileManifest mirrors the on-disk layout. phraseMap values only need to be
// truthy, so they are decoded loosely.
type fileManifest struct {
	PhraseMap   map[string]any        `json:"phraseMap"   yaml:"phraseMap"`
	PhraseClips map[string][]fileClip `json:"phraseClips" yaml:"phraseClips"`
	StaticClips fileStaticClips       `json:"staticClips" yaml:"staticClips"`
	FixedTokens []string              `json:"fixedTokens" yaml:"fixedTokens"`
	FixedText   string                `json:"fixedText"   yaml:"fixedText"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*domain.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return m, nil
}

// Decode reads a manifest from r in the given format.
func Decode(r io.Reader, format Format) (*domain.Manifest, error) {
	var raw fileManifest
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return raw.toDomain()
}

func (f fileManifest) toDomain() (*domain.Manifest, error) {
	m := &domain.Manifest{
		PhraseMap:         make(map[string]bool, len(f.PhraseMap)),
		PhraseClips:       make(map[string][]domain.Clip, len(f.PhraseClips)),
		StaticWords:       make(map[string]domain.Clip, len(f.StaticClips.Words)),
		StaticPunctuation: make(map[string]domain.Clip, len(f.StaticClips.Punctuation)),
		FixedText:         f.FixedText,
	}

	for phrase, v := range f.PhraseMap {
		if truthy(v) {
			m.PhraseMap[phrase] = true
		}
	}

	for phrase, clips := range f.PhraseClips {
		pool := make([]domain.Clip, 0, len(clips))
		for i, c := range clips {
			clip, err := c.toDomain(domain.ClipTypePhrase)
			if err != nil {
				return nil, fmt.Errorf("phraseClips[%q][%d]: %w", phrase, i, err)
			}
			pool = append(pool, clip)
		}
		m.PhraseClips[phrase] = pool
	}

	for key, c := range f.StaticClips.Words {
		clip, err := c.toDomain(domain.ClipTypeStatic)
		if err != nil {
			return nil, fmt.Errorf("staticClips.words[%q]: %w", key, err)
		}
		m.StaticWords[key] = clip
	}
	for key, c := range f.StaticClips.Punctuation {
		clip, err := c.toDomain(domain.ClipTypeStatic)
		if err != nil {
			return nil, fmt.Errorf("staticClips.punctuation[%q]: %w", key, err)
		}
		m.StaticPunctuation[key] = clip
	}

	if len(f.FixedTokens) > 0 {
		m.FixedTokens = make([]domain.Token, len(f.FixedTokens))
		for i, t := range f.FixedTokens {
			m.FixedTokens[i] = domain.Token(t)
		}
	} else if f.FixedText != "" {
		m.FixedTokens = domain.Tokenize(f.FixedText)
	}

	return m, nil
}

func (c fileClip) toDomain(t domain.ClipType) (domain.Clip, error) {
	if strings.TrimSpace(c.Filename) == "" {
		return domain.Clip{}, fmt.Errorf("filename is required")
	}
	if c.Duration < 0 || math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return domain.Clip{}, fmt.Errorf("invalid duration %v for %s", c.Duration, c.Filename)
	}
	return domain.Clip{Filename: c.Filename, Duration: c.Duration, Type: t}, nil
}

// WithFixedText replaces the manifest's fixed source text and recomputes its
// tokens from it.
func WithFixedText(m *domain.Manifest, text string) {
	m.FixedText = text
	m.FixedTokens = domain.Tokenize(text)
}

// LoadFixedText reads a fixed source text file into m.
func LoadFixedText(m *domain.Manifest, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("manifest: read fixed text %s: %w", path, err)
	}
	WithFixedText(m, string(data))
	return nil
}

// truthy follows loose truthiness: false, zero, empty string and null are
// false, everything else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	default:
		return true
	}
}

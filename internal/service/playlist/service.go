package playlist

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Options configures matching and serialization.
type Options struct {
	MaxPhraseLength int
	MaxTextLength   int
	BaseURL         string
	OpenerFilename  string
	OpenerDuration  float64
	TargetDuration  int
}

// Service turns text into session playlists against a fixed manifest.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	manifest   *domain.Manifest
	opts       Options
	serializer Serializer
	log        *slog.Logger
}

// NewService creates a new playlist Service.
func NewService(log *slog.Logger, manifest *domain.Manifest, opts Options) *Service {
	if opts.MaxPhraseLength <= 0 {
		opts.MaxPhraseLength = DefaultMaxPhraseLength
	}
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}
	if opts.TargetDuration <= 0 {
		opts.TargetDuration = defaultTargetDuration
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	svc := &Service{
		manifest: manifest,
		opts:     opts,
		serializer: Serializer{
			BaseURL:        opts.BaseURL,
			Opener:         domain.Clip{Filename: opts.OpenerFilename, Duration: opts.OpenerDuration, Type: domain.ClipTypeStatic},
			TargetDuration: opts.TargetDuration,
			Now:            time.Now,
		},
		log: log.With("service", "playlist"),
	}
	svc.warnLongClips()
	return svc
}

// warnLongClips reports segments whose rounded duration exceeds
// EXT-X-TARGETDURATION.
func (s *Service) warnLongClips() {
	limit := s.opts.TargetDuration
	long := s.manifest.ClipsLongerThan(limit)
	if s.opts.OpenerFilename != "" && math.Round(s.opts.OpenerDuration) > float64(limit) {
		long = append(long, s.opts.OpenerFilename)
	}
	if len(long) == 0 {
		return
	}
	s.log.Warn("clips exceed target duration",
		slog.Int("target_duration", limit),
		slog.Int("count", len(long)),
		slog.Any("clips", long),
	)
}

// Manifest returns the catalog the service generates against.
func (s *Service) Manifest() *domain.Manifest {
	return s.manifest
}

// Serializer returns the serializer used for generated playlists.
func (s *Service) Serializer() Serializer {
	return s.serializer
}

package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/playlist"
)

type sessionStore interface {
	Put(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Len() int
}

type playlistGenerator interface {
	Generate(ctx context.Context, input playlist.GenerateInput) (*playlist.Result, error)
	Manifest() *domain.Manifest
}

// Service creates and serves generated playlist sessions.
type Service struct {
	log       *slog.Logger
	store     sessionStore
	generator playlistGenerator
	newID     func() string
	now       func() time.Time
}

// NewService creates a new session Service.
func NewService(log *slog.Logger, store sessionStore, generator playlistGenerator) *Service {
	return &Service{
		log:       log.With("service", "session"),
		store:     store,
		generator: generator,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Count returns the number of live sessions.
func (s *Service) Count() int {
	return s.store.Len()
}

// Ready reports whether sessions can be generated.
func (s *Service) Ready(_ context.Context) error {
	if s.generator.Manifest() == nil {
		return domain.ErrManifest
	}
	return nil
}

// ManifestSummary describes the catalog sessions are generated against.
func (s *Service) ManifestSummary() domain.ManifestSummary {
	return s.generator.Manifest().Summary()
}

package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/playlist"
	"github.com/heartmarshall/phrasecast/pkg/ctxutil"
)

// Create generates a playlist under a fresh session id and stores it.
// The session id doubles as the selection seed.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Session, error) {
	id := s.newID()
	ctx = ctxutil.WithSessionID(ctx, id)

	res, err := s.generator.Generate(ctx, playlist.GenerateInput{
		Seed: id,
		Text: input.normalizedText(),
	})
	if err != nil {
		return nil, fmt.Errorf("generate playlist: %w", err)
	}

	sess := &domain.Session{
		ID:        id,
		CreatedAt: s.now().UTC(),
		Playlist:  res.Playlist,
		Script:    res.Script,
		Tokens:    res.Tokens,
		Matches:   res.Matches,
		Stats:     res.Stats,
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", id),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		slog.Bool("custom_text", input.normalizedText() != nil),
		slog.Int("clips", sess.Stats.TotalClips),
		slog.Int("dropped", sess.Stats.DroppedTokens),
		slog.Float64("duration", sess.Stats.TotalDuration),
	)

	return sess, nil
}

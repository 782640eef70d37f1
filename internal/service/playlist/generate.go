package playlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Generate runs the full pipeline: tokens, phrase matches, script, playlist.
// The output is fully determined by the input, the manifest and the clock.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if err := input.Validate(s.opts.MaxTextLength); err != nil {
		return nil, err
	}

	tokens, err := s.resolveTokens(input.Text)
	if err != nil {
		return nil, err
	}

	matches := Match(tokens, s.manifest, s.opts.MaxPhraseLength)
	built := BuildScript(tokens, matches, s.manifest, input.Seed)

	for _, idx := range built.Dropped {
		s.log.WarnContext(ctx, "no clip for token",
			slog.String("seed", input.Seed),
			slog.String("token", string(tokens[idx])),
			slog.Int("index", idx),
		)
	}

	res := &Result{
		Tokens:   tokens,
		Matches:  matches,
		Script:   built.Items,
		Dropped:  built.Dropped,
		Playlist: s.serializer.Serialize(built.Items, input.Seed),
		Stats:    domain.ComputeStats(tokens, matches, built.Items, len(built.Dropped)),
	}

	s.log.DebugContext(ctx, "playlist generated",
		slog.String("seed", input.Seed),
		slog.Int("tokens", res.Stats.TotalTokens),
		slog.Int("matches", res.Stats.MatchedPhrase),
		slog.Int("clips", res.Stats.TotalClips),
		slog.Int("dropped", res.Stats.DroppedTokens),
		slog.Float64("duration", res.Stats.TotalDuration),
	)

	return res, nil
}

// resolveTokens picks the token source: caller text, then the manifest's
// precomputed tokens, then the manifest's fixed text.
func (s *Service) resolveTokens(text *string) ([]domain.Token, error) {
	var tokens []domain.Token
	switch {
	case text != nil:
		tokens = domain.Tokenize(*text)
	case s.manifest != nil && len(s.manifest.FixedTokens) > 0:
		tokens = s.manifest.FixedTokens
	case s.manifest != nil && s.manifest.FixedText != "":
		tokens = domain.Tokenize(s.manifest.FixedText)
	default:
		return nil, fmt.Errorf("no text supplied and manifest has no fixed tokens: %w", domain.ErrNoTokens)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("text produced no tokens: %w", domain.ErrNoTokens)
	}
	return tokens, nil
}

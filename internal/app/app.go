package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phrasecast/internal/adapter/manifest"
	"github.com/heartmarshall/phrasecast/internal/config"
	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Run is the application entry point. It loads configuration and the clip
// manifest, wires services and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("manifest", cfg.Manifest.Path),
	)

	m, err := LoadManifest(cfg.Manifest)
	if err != nil {
		return err
	}
	sum := m.Summary()
	logger.Info("manifest loaded",
		slog.Int("phrases", sum.Phrases),
		slog.Int("matchable_phrases", sum.MatchablePhrases),
		slog.Int("phrase_clips", sum.PhraseClips),
		slog.Int("static_words", sum.StaticWords),
		slog.Int("static_punctuation", sum.StaticPunctuation),
		slog.Int("fixed_tokens", sum.FixedTokens),
	)
	if sum.FixedTokens == 0 {
		logger.Warn("manifest has no fixed text: sessions require caller text")
	}

	srv := newServer(cfg, logger, m)
	defer srv.close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.http.Addr))
		if err := srv.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped", slog.Duration("uptime", time.Since(srv.started).Round(time.Second)))
	return nil
}

// LoadManifest reads the clip catalog and applies the optional fixed text
// override.
func LoadManifest(cfg config.ManifestConfig) (*domain.Manifest, error) {
	m, err := manifest.Load(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrManifest, err)
	}
	if cfg.FixedTextPath != "" {
		if err := manifest.LoadFixedText(m, cfg.FixedTextPath); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrManifest, err)
		}
	}
	return m, nil
}

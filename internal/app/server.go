package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/phrasecast/internal/adapter/memory/sessionstore"
	"github.com/heartmarshall/phrasecast/internal/config"
	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/playlist"
	"github.com/heartmarshall/phrasecast/internal/service/session"
	"github.com/heartmarshall/phrasecast/internal/transport/middleware"
	"github.com/heartmarshall/phrasecast/internal/transport/rest"
)

// server bundles the HTTP server with the resources it owns.
type server struct {
	http    *http.Server
	limiter *middleware.RateLimiter
	started time.Time
}

func (s *server) close() {
	s.limiter.Stop()
}

// newServer wires services, handlers and middleware around m.
func newServer(cfg *config.Config, logger *slog.Logger, m *domain.Manifest) *server {
	playlists := playlist.NewService(logger, m, playlist.Options{
		MaxPhraseLength: cfg.Playlist.MaxPhraseLength,
		MaxTextLength:   cfg.Playlist.MaxTextLength,
		BaseURL:         cfg.Playlist.BaseURL,
		OpenerFilename:  cfg.Playlist.OpenerFilename,
		OpenerDuration:  cfg.Playlist.OpenerDuration,
		TargetDuration:  cfg.Playlist.TargetDuration,
	})
	store := sessionstore.New(logger, cfg.Session.MaxSessions, cfg.Session.TTL)
	sessions := session.NewService(logger, store, playlists)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	mux := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(sessions, BuildVersion()),
		Sessions:    rest.NewSessionHandler(sessions, logger),
		CreateLimit: limiter.Limit(),
		ClipsDir:    cfg.Server.ClipsDir,
		StaticDir:   cfg.Server.StaticDir,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return &server{
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		limiter: limiter,
		started: time.Now(),
	}
}

package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/phrasecast/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router needs.
type RouterDeps struct {
	Health   *HealthHandler
	Sessions *SessionHandler
	// CreateLimit wraps POST /api/sessions only; nil disables it.
	CreateLimit middleware.Middleware
	// ClipsDir, when set, is served at /hls_clips/.
	ClipsDir string
	// StaticDir, when set, is served at /.
	StaticDir string
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.Handle("POST /api/sessions", middleware.Wrap(deps.Sessions.Create, deps.CreateLimit))
	mux.HandleFunc("GET /api/sessions/{id}", deps.Sessions.Get)
	mux.HandleFunc("GET /api/sessions/{id}/playlist.m3u8", deps.Sessions.Playlist)

	if dir := strings.TrimSpace(deps.ClipsDir); dir != "" {
		mux.Handle("GET /hls_clips/", http.StripPrefix("/hls_clips/", http.FileServer(http.Dir(dir))))
	}
	if dir := strings.TrimSpace(deps.StaticDir); dir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(dir)))
	}

	return mux
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/playlist"
	"github.com/heartmarshall/phrasecast/internal/service/session"
	"github.com/heartmarshall/phrasecast/pkg/ctxutil"
)

// maxCreateBody bounds the POST /api/sessions request body.
const maxCreateBody = 1 << 20

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	Create(ctx context.Context, input session.CreateInput) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Playlist(ctx context.Context, id string) (string, error)
}

// SessionHandler serves session REST endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type createSessionRequest struct {
	Text *string `json:"text"`
}

type createSessionResponse struct {
	SessionID   string       `json:"sessionId"`
	PlaylistURL string       `json:"playlistUrl"`
	Stats       domain.Stats `json:"stats"`
}

type sessionResponse struct {
	SessionID   string              `json:"sessionId"`
	CreatedAt   time.Time           `json:"createdAt"`
	PlaylistURL string              `json:"playlistUrl"`
	Tokens      []domain.Token      `json:"tokens"`
	Matches     []domain.Match      `json:"matches"`
	Script      []domain.ScriptItem `json:"script"`
	Stats       domain.Stats        `json:"stats"`
}

// Create handles POST /api/sessions. The body is optional; without text the
// manifest's fixed text is used.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, err)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.Create(r.Context(), session.CreateInput{Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	url := playlistPath(sess.ID)
	w.Header().Set("Location", url)
	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID:   sess.ID,
		PlaylistURL: url,
		Stats:       sess.Stats,
	})
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx := ctxutil.WithSessionID(r.Context(), id)

	sess, err := h.svc.Get(ctx, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID:   sess.ID,
		CreatedAt:   sess.CreatedAt,
		PlaylistURL: playlistPath(sess.ID),
		Tokens:      sess.Tokens,
		Matches:     sess.Matches,
		Script:      sess.Script,
		Stats:       sess.Stats,
	})
}

// Playlist handles GET /api/sessions/{id}/playlist.m3u8.
func (h *SessionHandler) Playlist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx := ctxutil.WithSessionID(r.Context(), id)

	body, err := h.svc.Playlist(ctx, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", playlist.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body) //nolint:errcheck
}

func playlistPath(id string) string {
	return "/api/sessions/" + id + "/playlist.m3u8"
}

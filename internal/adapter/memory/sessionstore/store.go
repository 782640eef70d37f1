// Package sessionstore keeps generated sessions in memory with a size bound
// and a time-to-live.
package sessionstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Store is an expiring LRU of sessions keyed by session id.
// It is safe for concurrent use.
type Store struct {
	cache *expirable.LRU[string, *domain.Session]
	log   *slog.Logger
}

// New creates a Store holding at most maxSessions entries, each for ttl.
// A non-positive ttl disables expiry.
func New(log *slog.Logger, maxSessions int, ttl time.Duration) *Store {
	s := &Store{log: log.With("store", "session")}
	if ttl < 0 {
		ttl = 0
	}
	s.cache = expirable.NewLRU[string, *domain.Session](maxSessions, s.onEvict, ttl)
	return s
}

func (s *Store) onEvict(id string, _ *domain.Session) {
	s.log.Debug("session evicted", slog.String("session_id", id))
}

// Put stores sess under its id, replacing any existing entry.
func (s *Store) Put(_ context.Context, sess *domain.Session) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("session store: put: %w", domain.NewValidationError("id", "required"))
	}
	s.cache.Add(sess.ID, sess)
	return nil
}

// Get returns the session with the given id or domain.ErrNotFound.
func (s *Store) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

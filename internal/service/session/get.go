package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Get returns a stored session by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("session_id", "required")
	}

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// Playlist returns the serialized playlist of a stored session.
func (s *Service) Playlist(ctx context.Context, id string) (string, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return sess.Playlist, nil
}

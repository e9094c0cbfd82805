package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	SaveSession(ctx context.Context, s *session.Session) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type sessionRepository struct {
	store cache.Cache
	ttl   time.Duration
}

// NewSessionRepo keeps sessions in store; every save extends the expiry to ttl.
func NewSessionRepo(store cache.Cache, ttl time.Duration) SessionRepository {
	return &sessionRepository{store: store, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return cache.Key(cache.SessionKeyPrefix, id.String())
}

func (r *sessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {

	var s session.Session

	found, err := r.store.Get(ctx, sessionKey(id), &s)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	s.Normalize()

	return &s, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, s *session.Session) error {

	if err := r.store.Set(ctx, sessionKey(s.ID), s, r.ttl); err != nil {
		return fmt.Errorf("saving session %s: %w", s.ID, err)
	}

	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {

	if err := r.store.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}

	return nil
}

package service

import (
	"context"
	stdErrors "errors"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/food-delivery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type SessionService interface {
	CreateSession(ctx context.Context) (*models.SessionResponse, error)
	GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	// UpdateSession loads the session, applies fn and saves the result.
	// Updates of one session never interleave. Nothing is saved when fn fails.
	UpdateSession(ctx context.Context, id uuid.UUID, fn func(*session.Session) error) (*session.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	IssueToken(s *session.Session) (*models.SessionResponse, error)
}

type sessionService struct {
	repo     repository.SessionRepository
	jwtKey   []byte
	tokenTTL time.Duration
	locks    *keyedMutex
	now      func() time.Time
	newID    func() uuid.UUID
}

func NewSessionService(repo repository.SessionRepository, jwtKey []byte, tokenTTL time.Duration) SessionService {
	return &sessionService{
		repo:     repo,
		jwtKey:   jwtKey,
		tokenTTL: tokenTTL,
		locks:    newKeyedMutex(),
		now:      time.Now,
		newID:    uuid.New,
	}
}

func (s *sessionService) CreateSession(ctx context.Context) (*models.SessionResponse, error) {

	sess := session.New(s.newID(), s.now())

	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return nil, errors.DatabaseError("Failed to start session").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Session created", "sessionId", sess.ID.String())

	return s.IssueToken(sess)
}

func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {

	sess, err := s.repo.GetSession(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.UnauthorizedError("Your session has expired. Please refresh the page.").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load session").WithError(err)
	}

	return sess, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id uuid.UUID, fn func(*session.Session) error) (*session.Session, error) {

	unlock := s.locks.Lock(id.String())
	defer unlock()

	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	sess.UpdatedAt = s.now()

	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return nil, errors.DatabaseError("Failed to save session").WithError(err)
	}

	return sess, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {

	unlock := s.locks.Lock(id.String())
	defer unlock()

	if err := s.repo.DeleteSession(ctx, id); err != nil {
		return errors.DatabaseError("Failed to end session").WithError(err)
	}

	return nil
}

// IssueToken signs a session JWT. The upstream token never leaves the server.
func (s *sessionService) IssueToken(sess *session.Session) (*models.SessionResponse, error) {

	expiresAt := s.now().Add(s.tokenTTL)

	claims := &models.Claims{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			Subject:   sess.ID.String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to issue session token").WithError(err)
	}

	return &models.SessionResponse{
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

// keyedMutex serializes work per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

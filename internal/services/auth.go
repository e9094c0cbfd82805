package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/food-delivery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	RequestOTP(ctx context.Context, sessionID uuid.UUID, req *models.RequestOTPRequest) (*models.RequestOTPResponse, error)
	VerifyOTP(ctx context.Context, sessionID uuid.UUID, req *models.VerifyOTPRequest) (*models.SessionResponse, error)
	CurrentUser(ctx context.Context, sessionID uuid.UUID) (*models.User, error)
	Logout(ctx context.Context, sessionID uuid.UUID) (*models.SessionResponse, error)
}

type authService struct {
	sessions  SessionService
	api       AuthAPI
	rateLimit repository.RateLimitRepository
}

func NewAuthService(sessions SessionService, api AuthAPI, rateLimit repository.RateLimitRepository) AuthService {
	return &authService{sessions: sessions, api: api, rateLimit: rateLimit}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	return s.api.Register(ctx, req)
}

// RequestOTP asks upstream for a code and moves the session to the OTP modal.
// When the phone number is over its limit nothing is sent and Sent is false.
func (s *authService) RequestOTP(ctx context.Context, sessionID uuid.UUID, req *models.RequestOTPRequest) (*models.RequestOTPResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	allowed, remaining, retryAfter, err := s.rateLimit.CheckOTPRateLimit(ctx, req.Phone)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.RequestOTPResponse{
			Sent:       false,
			Message:    fmt.Sprintf("Too many code requests. Please try again in %d seconds.", retryAfter),
			RetryAfter: retryAfter,
		}, nil
	}

	if err := s.api.RequestOTP(ctx, req.Phone); err != nil {
		return nil, err
	}

	if _, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		return sess.Modal.Open(modal.OTP, modal.Props{"phone": req.Phone})
	}); err != nil {
		return nil, err
	}

	logger.Info("OTP requested", slog.Int("remainingTries", remaining))

	return &models.RequestOTPResponse{
		Sent:           true,
		Message:        "We sent a code to your phone",
		RemainingTries: remaining,
	}, nil
}

// VerifyOTP signs the session in. The upstream token is kept on the session
// and the caller receives a fresh session token carrying the user id.
func (s *authService) VerifyOTP(ctx context.Context, sessionID uuid.UUID, req *models.VerifyOTPRequest) (*models.SessionResponse, error) {

	result, err := s.api.VerifyOTP(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.Token == "" || result.User.ID == "" {
		return nil, errors.ThirdPartyError("Sign in failed. Please try again.").WithDetail("verify response missing token or user")
	}

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		sess.SignIn(result.User.ID, result.Token)
		if t, _ := sess.Modal.Current(); t == modal.Login || t == modal.OTP || t == modal.Signup {
			sess.Modal.Close()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.sessions.IssueToken(sess)
	if err != nil {
		return nil, err
	}

	user := result.User
	resp.User = &user

	middleware.LoggerFromContext(ctx).Info("Session signed in", slog.String("userId", user.ID))

	return resp, nil
}

func (s *authService) CurrentUser(ctx context.Context, sessionID uuid.UUID) (*models.User, error) {

	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.SignedIn() {
		return nil, errors.UnauthorizedError("Not signed in")
	}

	return s.api.CurrentUser(ctx, sess.UpstreamToken)
}

// Logout drops the upstream identity but keeps the cart and address.
func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) (*models.SessionResponse, error) {

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		sess.SignOut()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.sessions.IssueToken(sess)
}

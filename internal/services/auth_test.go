package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	repoMocks "github.com/aaravmahajanofficial/food-delivery-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPhone = "+2348012345678"

func TestAuthService_RequestOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Code Sent And OTP Modal Opened", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		limiter := repoMocks.NewRateLimitRepository(t)
		authService := service.NewAuthService(sessions, api, limiter)

		limiter.On("CheckOTPRateLimit", ctx, testPhone).Return(true, 4, 0, nil).Once()
		api.On("RequestOTP", ctx, testPhone).Return(nil).Once()

		// Act
		resp, err := authService.RequestOTP(ctx, sess.ID, &models.RequestOTPRequest{Phone: testPhone})

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Sent)
		assert.Equal(t, 4, resp.RemainingTries)

		current, props := sess.Modal.Current()
		assert.Equal(t, modal.OTP, current)
		assert.Equal(t, testPhone, props["phone"])
	})

	t.Run("Success - Rate Limited", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		sessions, repo := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		limiter := repoMocks.NewRateLimitRepository(t)
		authService := service.NewAuthService(sessions, api, limiter)

		limiter.On("CheckOTPRateLimit", ctx, testPhone).Return(false, 0, 120, nil).Once()

		// Act
		resp, err := authService.RequestOTP(ctx, sess.ID, &models.RequestOTPRequest{Phone: testPhone})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Sent)
		assert.Equal(t, 120, resp.RetryAfter)
		assert.Contains(t, resp.Message, "120 seconds")
		api.AssertNotCalled(t, "RequestOTP", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Limiter Error", func(t *testing.T) {
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		limiter := repoMocks.NewRateLimitRepository(t)
		authService := service.NewAuthService(sessions, mocks.NewMockAuthAPI(t), limiter)

		limiter.On("CheckOTPRateLimit", ctx, testPhone).Return(false, 0, 0, errors.New("redis down")).Once()

		resp, err := authService.RequestOTP(ctx, sess.ID, &models.RequestOTPRequest{Phone: testPhone})

		assert.Nil(t, resp)
		requireAppError(t, err, appErrors.ErrCodeThirdPartyError)
	})

	t.Run("Failure - Upstream Rejects", func(t *testing.T) {
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		limiter := repoMocks.NewRateLimitRepository(t)
		authService := service.NewAuthService(sessions, api, limiter)

		limiter.On("CheckOTPRateLimit", ctx, testPhone).Return(true, 2, 0, nil).Once()
		api.On("RequestOTP", ctx, testPhone).Return(appErrors.BadRequestError("Phone number is not registered")).Once()

		resp, err := authService.RequestOTP(ctx, sess.ID, &models.RequestOTPRequest{Phone: testPhone})

		assert.Nil(t, resp)
		appErr := requireAppError(t, err, appErrors.ErrCodeBadRequest)
		assert.Equal(t, "Phone number is not registered", appErr.Message)
		assert.False(t, sess.Modal.IsOpen())
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	ctx := context.Background()
	req := &models.VerifyOTPRequest{Phone: testPhone, Code: "123456"}

	t.Run("Success - Session Signed In", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		_ = sess.Modal.Open(modal.OTP, nil)
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		authService := service.NewAuthService(sessions, api, repoMocks.NewRateLimitRepository(t))

		user := models.User{ID: "u-7", FirstName: "Ada", Phone: testPhone}
		api.On("VerifyOTP", ctx, req).Return(&models.VerifyOTPResult{Token: "upstream-token", User: user}, nil).Once()

		// Act
		resp, err := authService.VerifyOTP(ctx, sess.ID, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, resp.User)
		assert.Equal(t, "u-7", resp.User.ID)
		assert.Equal(t, "u-7", parseClaims(t, resp.Token).UserID)
		assert.True(t, sess.SignedIn())
		assert.Equal(t, "upstream-token", sess.UpstreamToken)
		assert.False(t, sess.Modal.IsOpen())
	})

	t.Run("Failure - Wrong Code", func(t *testing.T) {
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		authService := service.NewAuthService(sessions, api, repoMocks.NewRateLimitRepository(t))

		api.On("VerifyOTP", ctx, req).Return(nil, appErrors.UnauthorizedError("Invalid code")).Once()

		resp, err := authService.VerifyOTP(ctx, sess.ID, req)

		assert.Nil(t, resp)
		requireAppError(t, err, appErrors.ErrCodeUnauthorized)
		assert.False(t, sess.SignedIn())
	})

	t.Run("Failure - Upstream Omits Token", func(t *testing.T) {
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		authService := service.NewAuthService(sessions, api, repoMocks.NewRateLimitRepository(t))

		api.On("VerifyOTP", ctx, req).Return(&models.VerifyOTPResult{User: models.User{ID: "u-7"}}, nil).Once()

		resp, err := authService.VerifyOTP(ctx, sess.ID, req)

		assert.Nil(t, resp)
		requireAppError(t, err, appErrors.ErrCodeThirdPartyError)
	})
}

func TestAuthService_CurrentUserAndLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Signed Out", func(t *testing.T) {
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		authService := service.NewAuthService(sessions, api, repoMocks.NewRateLimitRepository(t))

		user, err := authService.CurrentUser(ctx, sess.ID)

		assert.Nil(t, user)
		requireAppError(t, err, appErrors.ErrCodeUnauthorized)
		api.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
	})

	t.Run("Success - Current User Then Logout", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		sess.SignIn("u-7", "upstream-token")
		sess.Cart.CreatePack()
		sessions, _ := storedSession(t, sess)
		api := mocks.NewMockAuthAPI(t)
		authService := service.NewAuthService(sessions, api, repoMocks.NewRateLimitRepository(t))

		api.On("CurrentUser", ctx, "upstream-token").Return(&models.User{ID: "u-7"}, nil).Once()

		// Act
		user, err := authService.CurrentUser(ctx, sess.ID)
		require.NoError(t, err)
		resp, err := authService.Logout(ctx, sess.ID)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, "u-7", user.ID)
		assert.Empty(t, parseClaims(t, resp.Token).UserID)
		assert.False(t, sess.SignedIn())
		assert.Len(t, sess.Cart.Packs, 1)
	})
}

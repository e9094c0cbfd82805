package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPhone = "+2348012345678"

func setupAuthTest(t *testing.T) (*mocks.MockSessionService, *mocks.MockAuthService, *handlers.AuthHandler) {
	mockSessions := mocks.NewMockSessionService(t)
	mockAuth := mocks.NewMockAuthService(t)
	return mockSessions, mockAuth, handlers.NewAuthHandler(mockSessions, mockAuth)
}

func TestCreateSession(t *testing.T) {
	t.Run("Success - Session Created", func(t *testing.T) {
		// Arrange
		mockSessions, _, h := setupAuthTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/sessions", nil, nil)
		rr := httptest.NewRecorder()

		mockSessions.On("CreateSession", mock.Anything).
			Return(&models.SessionResponse{Token: "signed.jwt.token", ExpiresIn: 86400}, nil).Once()

		// Act
		h.CreateSession()(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.SessionResponse
		resp := testutils.DecodeData(t, rr, &got)
		assert.True(t, resp.Success)
		assert.Equal(t, "signed.jwt.token", got.Token)
		assert.Nil(t, got.User)
	})

	t.Run("Failure - Store Unavailable", func(t *testing.T) {
		// Arrange
		mockSessions, _, h := setupAuthTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/sessions", nil, nil)
		rr := httptest.NewRecorder()

		mockSessions.On("CreateSession", mock.Anything).
			Return(nil, appErrors.DatabaseError("Failed to save session")).Once()

		// Act
		h.CreateSession()(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRegister(t *testing.T) {
	t.Run("Success - Registered", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		body := `{"firstName":"Ada","lastName":"Obi","email":"ada@example.com","phone":"` + testPhone + `"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body), nil)
		rr := httptest.NewRecorder()

		mockAuth.On("Register", mock.Anything, mock.MatchedBy(func(r *models.RegisterRequest) bool {
			return r.Email == "ada@example.com" && r.Phone == testPhone
		})).Return(&models.User{ID: uuid.NewString(), FirstName: "Ada", Email: "ada@example.com"}, nil).Once()

		// Act
		h.Register()(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		// Arrange
		_, _, h := setupAuthTest(t)
		body := `{"firstName":"Ada","lastName":"Obi","email":"nope","phone":"` + testPhone + `"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body), nil)
		rr := httptest.NewRecorder()

		// Act
		h.Register()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Already Registered", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		body := `{"firstName":"Ada","lastName":"Obi","email":"ada@example.com","phone":"` + testPhone + `"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body), nil)
		rr := httptest.NewRecorder()

		mockAuth.On("Register", mock.Anything, mock.Anything).
			Return(nil, appErrors.ConflictError("Customer already exists")).Once()

		// Act
		h.Register()(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRequestOTP(t *testing.T) {
	t.Run("Success - Code Sent", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/otp", strings.NewReader(`{"phone":"`+testPhone+`"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		mockAuth.On("RequestOTP", mock.Anything, sessionID, &models.RequestOTPRequest{Phone: testPhone}).
			Return(&models.RequestOTPResponse{Sent: true, Message: "We sent a code to your phone", RemainingTries: 2}, nil).Once()

		// Act
		h.RequestOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Retry-After"))

		var got models.RequestOTPResponse
		testutils.DecodeData(t, rr, &got)
		assert.True(t, got.Sent)
		assert.Equal(t, 2, got.RemainingTries)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/otp", strings.NewReader(`{"phone":"`+testPhone+`"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		mockAuth.On("RequestOTP", mock.Anything, sessionID, mock.Anything).
			Return(&models.RequestOTPResponse{Sent: false, Message: "Too many code requests. Please try again in 42 seconds.", RetryAfter: 42}, nil).Once()

		// Act
		h.RequestOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "42", rr.Header().Get("Retry-After"))

		var got models.RequestOTPResponse
		resp := testutils.DecodeData(t, rr, &got)
		assert.False(t, resp.Success)
		assert.Equal(t, 42, got.RetryAfter)
	})

	t.Run("Failure - Invalid Phone", func(t *testing.T) {
		// Arrange
		_, _, h := setupAuthTest(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/otp", strings.NewReader(`{"phone":"0801"}`), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		h.RequestOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - No Session", func(t *testing.T) {
		// Arrange
		_, _, h := setupAuthTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/otp", strings.NewReader(`{"phone":"`+testPhone+`"}`), nil)
		rr := httptest.NewRecorder()

		// Act
		h.RequestOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("Success - Signed In", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		body := `{"phone":"` + testPhone + `","code":"123456"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/otp/verify", strings.NewReader(body), sessionID, nil)
		rr := httptest.NewRecorder()

		userID := uuid.NewString()
		mockAuth.On("VerifyOTP", mock.Anything, sessionID, &models.VerifyOTPRequest{Phone: testPhone, Code: "123456"}).
			Return(&models.SessionResponse{Token: "new.jwt", ExpiresIn: 86400, User: &models.User{ID: userID}}, nil).Once()

		// Act
		h.VerifyOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.SessionResponse
		testutils.DecodeData(t, rr, &got)
		require.NotNil(t, got.User)
		assert.Equal(t, userID, got.User.ID)
		assert.Equal(t, "new.jwt", got.Token)
	})

	t.Run("Failure - Wrong Code", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		body := `{"phone":"` + testPhone + `","code":"000000"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/otp/verify", strings.NewReader(body), sessionID, nil)
		rr := httptest.NewRecorder()

		mockAuth.On("VerifyOTP", mock.Anything, sessionID, mock.Anything).
			Return(nil, appErrors.UnauthorizedError("Invalid code")).Once()

		// Act
		h.VerifyOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Failure - Non Numeric Code", func(t *testing.T) {
		// Arrange
		_, _, h := setupAuthTest(t)
		body := `{"phone":"` + testPhone + `","code":"abcd"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/otp/verify", strings.NewReader(body), uuid.New(), nil)
		rr := httptest.NewRecorder()

		// Act
		h.VerifyOTP()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("Success - Profile", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/auth/me", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockAuth.On("CurrentUser", mock.Anything, sessionID).
			Return(&models.User{ID: "u-1", FirstName: "Ada"}, nil).Once()

		// Act
		h.CurrentUser()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not Signed In", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/auth/me", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockAuth.On("CurrentUser", mock.Anything, sessionID).
			Return(nil, appErrors.UnauthorizedError("Not signed in")).Once()

		// Act
		h.CurrentUser()(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := testutils.DecodeData(t, rr, nil)
		assert.Equal(t, "Not signed in", resp.Error.Message)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success - Signed Out", func(t *testing.T) {
		// Arrange
		_, mockAuth, h := setupAuthTest(t)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/auth/logout", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockAuth.On("Logout", mock.Anything, sessionID).
			Return(&models.SessionResponse{Token: "anon.jwt", ExpiresIn: 86400}, nil).Once()

		// Act
		h.Logout()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.SessionResponse
		testutils.DecodeData(t, rr, &got)
		assert.Equal(t, "anon.jwt", got.Token)
		assert.Nil(t, got.User)
	})
}

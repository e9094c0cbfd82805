package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	sessionService service.SessionService
	authService    service.AuthService
	validator      *validator.Validate
}

func NewAuthHandler(sessionService service.SessionService, authService service.AuthService) *AuthHandler {
	return &AuthHandler{sessionService: sessionService, authService: authService, validator: validator.New()}
}

// CreateSession godoc
//	@Summary		Start a session
//	@Description	Creates an anonymous session with an empty cart and returns its bearer token.
//	@Tags			Auth
//	@Produce		json
//	@Success		201	{object}	models.SessionResponse	"Session token"
//	@Failure		500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/sessions [post]
func (h *AuthHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		resp, err := h.sessionService.CreateSession(r.Context())
		if err != nil {
			logger.Error("Failed to create session", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Session created")
		response.Success(w, http.StatusCreated, resp)
	}
}

// Register godoc
//	@Summary		Register a customer
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Customer details"
//	@Success		201		{object}	models.User				"Registered customer"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Customer already exists"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.authService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("Registration failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Customer registered", slog.String("userId", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

// RequestOTP godoc
//	@Summary		Send a sign-in code
//	@Description	Sends a one-time code to the phone and opens the OTP modal. Over the limit the response is a 429 with Retry-After.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			phone	body		models.RequestOTPRequest	true	"Phone number in E.164"
//	@Success		200		{object}	models.RequestOTPResponse	"Code sent"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		429		{object}	models.RequestOTPResponse	"Too many requests"
//	@Security		BearerAuth
//	@Router			/auth/otp [post]
func (h *AuthHandler) RequestOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.RequestOTPRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid OTP request input")
			return
		}

		resp, err := h.authService.RequestOTP(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("OTP request failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Sent {
			logger.Warn("OTP rate limit reached", slog.Int("retryAfter", resp.RetryAfter))
			w.Header().Set("Retry-After", strconv.Itoa(resp.RetryAfter))
			response.WriteJson(w, http.StatusTooManyRequests, response.APIResponse{Success: false, Data: resp})
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// VerifyOTP godoc
//	@Summary		Sign in with a code
//	@Description	Verifies the code and returns a new session token carrying the customer id. The cart is kept.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			code	body		models.VerifyOTPRequest	true	"Phone and code"
//	@Success		200		{object}	models.SessionResponse	"Signed-in session token"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Wrong code"
//	@Security		BearerAuth
//	@Router			/auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.VerifyOTPRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid OTP verification input")
			return
		}

		resp, err := h.authService.VerifyOTP(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("OTP verification failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// CurrentUser godoc
//	@Summary		Get the signed-in customer
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	models.User				"Customer"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Security		BearerAuth
//	@Router			/auth/me [get]
func (h *AuthHandler) CurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		user, err := h.authService.CurrentUser(r.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to get current user", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// Logout godoc
//	@Summary		Sign out
//	@Description	Drops the customer identity from the session. Cart and address are kept.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	models.SessionResponse	"Anonymous session token"
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		resp, err := h.authService.Logout(r.Context(), sessionID)
		if err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Session signed out")
		response.Success(w, http.StatusOK, resp)
	}
}

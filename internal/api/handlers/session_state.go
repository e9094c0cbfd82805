package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// SessionStateHandler serves the modal and address slots of a session.
type SessionStateHandler struct {
	modalService    service.ModalService
	locationService service.LocationService
	validator       *validator.Validate
}

func NewSessionStateHandler(modalService service.ModalService, locationService service.LocationService) *SessionStateHandler {
	return &SessionStateHandler{modalService: modalService, locationService: locationService, validator: validator.New()}
}

// GetModal godoc
//	@Summary		Get the open modal
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.ModalResponse	"Current modal"
//	@Failure		401	{object}	response.ErrorResponse	"Session missing or expired"
//	@Security		BearerAuth
//	@Router			/session/modal [get]
func (h *SessionStateHandler) GetModal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		resp, err := h.modalService.GetModal(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get modal", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// OpenModal godoc
//	@Summary		Open a modal
//	@Description	Replaces whatever modal is open with the requested one.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			modal	body		models.OpenModalRequest	true	"Modal type and props"
//	@Success		200		{object}	models.ModalResponse	"Opened modal"
//	@Failure		400		{object}	response.ErrorResponse	"Unknown modal type"
//	@Security		BearerAuth
//	@Router			/session/modal [put]
func (h *SessionStateHandler) OpenModal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.OpenModalRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid open modal input")
			return
		}

		resp, err := h.modalService.OpenModal(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to open modal", slog.String("type", req.Type), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Modal opened", slog.String("type", resp.Type))
		response.Success(w, http.StatusOK, resp)
	}
}

// CloseModal godoc
//	@Summary		Close the modal
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.ModalResponse	"Closed modal"
//	@Security		BearerAuth
//	@Router			/session/modal [delete]
func (h *SessionStateHandler) CloseModal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		resp, err := h.modalService.CloseModal(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to close modal", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// GetLocation godoc
//	@Summary		Get the delivery address
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	location.State			"Address, coordinates and delivery verdict"
//	@Failure		401	{object}	response.ErrorResponse	"Session missing or expired"
//	@Security		BearerAuth
//	@Router			/session/location [get]
func (h *SessionStateHandler) GetLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		state, err := h.locationService.GetLocation(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get location", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// SetAddress godoc
//	@Summary		Enter an address by hand
//	@Description	Stores the typed address, cancels pending device lookups and recomputes the delivery verdict.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.SetAddressRequest	true	"Address"
//	@Success		200		{object}	location.State				"Updated address"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Security		BearerAuth
//	@Router			/session/location [put]
func (h *SessionStateHandler) SetAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.SetAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		state, err := h.locationService.SetAddress(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to set address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address set", slog.String("state", state.Details.State), slog.String("localGovernment", state.Details.LocalGovernment))
		response.Success(w, http.StatusOK, state)
	}
}

// ResolveLocation godoc
//	@Summary		Resolve the device position
//	@Description	Reverse-geocodes coordinates into an address, or records the device failure (1 denied, 2 unavailable, 3 timeout) as a message. A newer request for the same session wins.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			fix	body		models.ResolveLocationRequest	true	"Device fix or failure code"
//	@Success		200	{object}	location.State					"Updated address"
//	@Failure		400	{object}	response.ErrorResponse			"Validation error"
//	@Failure		409	{object}	response.ErrorResponse			"Superseded by a newer request"
//	@Failure		502	{object}	response.ErrorResponse			"Geocoding failed"
//	@Security		BearerAuth
//	@Router			/session/location/resolve [post]
func (h *SessionStateHandler) ResolveLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.ResolveLocationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid resolve location input")
			return
		}

		state, err := h.locationService.ResolveLocation(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to resolve location", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
)

const (
	deliveryMalformedMessage = "Failed to process delivery verification"
	deliveryMissingMessage   = "State and local government are required"
)

// DeliveryHandler answers zone checks. Its wire format is flat
// ({isDeliverable, message} or {error}) rather than the usual envelope.
type DeliveryHandler struct {
	deliveryService service.DeliveryService
}

func NewDeliveryHandler(deliveryService service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// VerifyDelivery godoc
//	@Summary		Check whether an address is in a delivery zone
//	@Description	A "not deliverable" verdict is a 200 with isDeliverable false.
//	@Tags			Delivery
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.VerifyDeliveryRequest	true	"State, local government and optional locality"
//	@Success		200		{object}	models.DeliveryVerdict			"Verdict"
//	@Failure		400		{object}	models.DeliveryErrorResponse	"State or local government missing"
//	@Failure		500		{object}	models.DeliveryErrorResponse	"Malformed body"
//	@Router			/delivery/verify [post]
func (h *DeliveryHandler) VerifyDelivery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.VerifyDeliveryRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Error("Malformed delivery verification body", slog.String("error", err.Error()))
			response.WriteJson(w, http.StatusInternalServerError, models.DeliveryErrorResponse{Error: deliveryMalformedMessage})
			return
		}

		verdict, err := h.deliveryService.VerifyDelivery(r.Context(), models.LocationDetails{
			State:           req.State,
			LocalGovernment: req.LocalGovernment,
			Locality:        req.Locality,
		})
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeValidation {
				logger.Warn("Delivery verification missing fields", slog.String("error", appErr.Message))
				response.WriteJson(w, http.StatusBadRequest, models.DeliveryErrorResponse{Error: deliveryMissingMessage})
				return
			}

			logger.Error("Delivery verification failed", slog.Any("error", err))
			response.WriteJson(w, http.StatusInternalServerError, models.DeliveryErrorResponse{Error: deliveryMalformedMessage})
			return
		}

		response.WriteJson(w, http.StatusOK, verdict)
	}
}

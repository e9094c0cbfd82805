package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// ValidateCheckout godoc
//	@Summary		Check whether the session can go to payment
//	@Description	Ready needs a non-empty cart, a signed-in user and a deliverable address. A signed-out session gets the login modal opened. No order is placed.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutValidation	"Gate result with reasons and totals"
//	@Failure		401	{object}	response.ErrorResponse		"Session missing or expired"
//	@Security		BearerAuth
//	@Router			/checkout/validate [post]
func (h *CheckoutHandler) ValidateCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		result, err := h.checkoutService.ValidateCheckout(r.Context(), sessionID)
		if err != nil {
			logger.Error("Checkout validation failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout validated", slog.Bool("ready", result.Ready), slog.Any("reasons", result.Reasons))
		response.Success(w, http.StatusOK, result)
	}
}

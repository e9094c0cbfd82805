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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Description	Returns every pack in the cart with freshly computed totals.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	cart.Summary			"Cart with totals"
//	@Failure		401	{object}	response.ErrorResponse	"Session missing or expired"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		summary, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// CreatePack godoc
//	@Summary		Start a new pack
//	@Description	Appends an empty pack to the cart and makes it the active one.
//	@Tags			Cart
//	@Produce		json
//	@Success		201	{object}	cart.Summary			"Cart with the new active pack"
//	@Failure		401	{object}	response.ErrorResponse	"Session missing or expired"
//	@Security		BearerAuth
//	@Router			/cart/packs [post]
func (h *CartHandler) CreatePack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		summary, err := h.cartService.CreatePack(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to create pack", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Pack created", slog.String("packId", summary.ActivePackID))
		response.Success(w, http.StatusCreated, summary)
	}
}

// RemovePack godoc
//	@Summary		Remove a pack
//	@Description	Drops a pack and its items. Removing the active pack activates the most recent remaining one.
//	@Tags			Cart
//	@Produce		json
//	@Param			packId	path		string					true	"Pack ID"
//	@Success		200		{object}	cart.Summary			"Updated cart"
//	@Failure		404		{object}	response.ErrorResponse	"Pack not found"
//	@Security		BearerAuth
//	@Router			/cart/packs/{packId} [delete]
func (h *CartHandler) RemovePack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		packID := r.PathValue("packId")
		logger = logger.With(slog.String("packId", packID))

		summary, err := h.cartService.RemovePack(r.Context(), sessionID, packID)
		if err != nil {
			logger.Warn("Failed to remove pack", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Pack removed")
		response.Success(w, http.StatusOK, summary)
	}
}

// SetActivePack godoc
//	@Summary		Switch the active pack
//	@Tags			Cart
//	@Produce		json
//	@Param			packId	path		string					true	"Pack ID"
//	@Success		200		{object}	cart.Summary			"Updated cart"
//	@Failure		404		{object}	response.ErrorResponse	"Pack not found"
//	@Security		BearerAuth
//	@Router			/cart/packs/{packId}/active [put]
func (h *CartHandler) SetActivePack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		packID := r.PathValue("packId")

		summary, err := h.cartService.SetActivePack(r.Context(), sessionID, packID)
		if err != nil {
			logger.Warn("Failed to switch pack", slog.String("packId", packID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds to the given pack, or to the active pack (created when missing). Items from a second vendor are refused unless replaceCart is set.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Item to add"
//	@Success		200		{object}	cart.Summary				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Pack not found"
//	@Failure		409		{object}	response.ErrorResponse		"Item is from another vendor"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		logger = logger.With(slog.String("itemId", req.ID))

		summary, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, summary)
	}
}

// UpdateQuantity godoc
//	@Summary		Change an item's quantity
//	@Description	A quantity of zero removes the item.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			packId		path		string							true	"Pack ID"
//	@Param			itemId		path		string							true	"Item ID"
//	@Param			quantity	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200			{object}	cart.Summary					"Updated cart"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Pack or item not found"
//	@Security		BearerAuth
//	@Router			/cart/packs/{packId}/items/{itemId} [patch]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input")
			return
		}

		packID, itemID := r.PathValue("packId"), r.PathValue("itemId")

		summary, err := h.cartService.UpdateQuantity(r.Context(), sessionID, packID, itemID, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.String("packId", packID), slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// RemoveItem godoc
//	@Summary		Remove an item from a pack
//	@Tags			Cart
//	@Produce		json
//	@Param			packId	path		string					true	"Pack ID"
//	@Param			itemId	path		string					true	"Item ID"
//	@Success		200		{object}	cart.Summary			"Updated cart"
//	@Failure		404		{object}	response.ErrorResponse	"Pack or item not found"
//	@Security		BearerAuth
//	@Router			/cart/packs/{packId}/items/{itemId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		packID, itemID := r.PathValue("packId"), r.PathValue("itemId")

		summary, err := h.cartService.RemoveItem(r.Context(), sessionID, packID, itemID)
		if err != nil {
			logger.Warn("Failed to remove item", slog.String("packId", packID), slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	cart.Summary			"Empty cart"
//	@Failure		401	{object}	response.ErrorResponse	"Session missing or expired"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		summary, err := h.cartService.ClearCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, summary)
	}
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Products available in a city, optionally filtered by categories (comma separated) and a search term. Served from the query cache when fresh.
//	@Tags			Catalog
//	@Produce		json
//	@Param			page		query		int						false	"Page number (default: 1)"			minimum(1)
//	@Param			limit		query		int						false	"Page size (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Param			state		query		string					false	"State"
//	@Param			city		query		string					false	"City"
//	@Param			categories	query		string					false	"Comma separated category ids"
//	@Param			search		query		string					false	"Search term"
//	@Success		200			{object}	models.ProductList		"Products"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		502			{object}	response.ErrorResponse	"Upstream error"
//	@Failure		503			{object}	response.ErrorResponse	"Upstream unavailable"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		page, err := strconv.Atoi(query.Get("page"))
		if err != nil || page < 1 {
			page = defaultPage
		}
		limit, err := strconv.Atoi(query.Get("limit"))
		if err != nil || limit < 1 {
			limit = defaultLimit
		}

		params := models.ProductListParams{
			Page:       page,
			Limit:      limit,
			State:      query.Get("state"),
			City:       query.Get("city"),
			Categories: query.Get("categories"),
			Search:     query.Get("search"),
		}

		if err := h.validator.Struct(params); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				logger.Warn("Invalid product query", slog.String("error", validationErrs.Error()))
				response.ValidationError(w, validationErrs)
				return
			}
		}

		list, err := h.catalogService.ListProducts(r.Context(), params)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Products listed", slog.Int("count", len(list.Products)), slog.Int("page", page))
		response.Success(w, http.StatusOK, list)
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		id := r.PathValue("id")

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListCategories godoc
//	@Summary		List product categories
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Category			"Categories"
//	@Failure		502	{object}	response.ErrorResponse	"Upstream error"
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if categories == nil {
			categories = []models.Category{}
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// ListBusinesses godoc
//	@Summary		List businesses
//	@Description	Vendors in a city, filtered by business type or category.
//	@Tags			Catalog
//	@Produce		json
//	@Param			city			query		string					false	"City"
//	@Param			state			query		string					false	"State"
//	@Param			businessType	query		string					false	"Business type; takes precedence over category"
//	@Param			category		query		string					false	"Category"
//	@Param			subcategory		query		string					false	"Subcategory"
//	@Success		200				{object}	models.BusinessList		"Businesses"
//	@Failure		502				{object}	response.ErrorResponse	"Upstream error"
//	@Router			/businesses [get]
func (h *CatalogHandler) ListBusinesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		params := models.BusinessListParams{
			City:         query.Get("city"),
			State:        query.Get("state"),
			BusinessType: query.Get("businessType"),
			Category:     query.Get("category"),
			Subcategory:  query.Get("subcategory"),
		}

		list, err := h.catalogService.ListBusinesses(r.Context(), params)
		if err != nil {
			logger.Error("Failed to list businesses", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

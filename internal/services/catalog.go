package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
)

type CatalogService interface {
	ListProducts(ctx context.Context, params models.ProductListParams) (*models.ProductList, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBusinesses(ctx context.Context, params models.BusinessListParams) (*models.BusinessList, error)
}

const (
	noProductsMessage   = "No products found"
	noBusinessesMessage = "No businesses found"
)

type catalogService struct {
	api     CatalogAPI
	queries *cache.QueryCache
}

func NewCatalogService(api CatalogAPI, queries *cache.QueryCache) CatalogService {
	return &catalogService{api: api, queries: queries}
}

func (s *catalogService) ListProducts(ctx context.Context, params models.ProductListParams) (*models.ProductList, error) {

	params.Search = utils.StripTags(params.Search)

	key := url.Values{
		"page":       {strconv.Itoa(params.Page)},
		"limit":      {strconv.Itoa(params.Limit)},
		"state":      {strings.ToLower(params.State)},
		"city":       {strings.ToLower(params.City)},
		"categories": {params.Categories},
		"search":     {strings.ToLower(params.Search)},
	}.Encode()

	list, err := cache.Fetch(ctx, s.queries, "products", key, func(ctx context.Context) (*models.ProductList, error) {
		return s.api.ListProducts(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	result := *list
	if len(result.Products) == 0 && result.Message == "" {
		result.Message = noProductsMessage
	}

	return &result, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.AddValidationError("id", "is required")
	}

	return cache.Fetch(ctx, s.queries, "product", url.PathEscape(id), func(ctx context.Context) (*models.Product, error) {
		return s.api.GetProduct(ctx, id)
	})
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return cache.Fetch(ctx, s.queries, "categories", "", s.api.ListCategories)
}

func (s *catalogService) ListBusinesses(ctx context.Context, params models.BusinessListParams) (*models.BusinessList, error) {

	key := url.Values{
		"city":         {strings.ToLower(params.City)},
		"state":        {strings.ToLower(params.State)},
		"businessType": {params.BusinessType},
		"category":     {params.Category},
		"subcategory":  {params.Subcategory},
	}.Encode()

	list, err := cache.Fetch(ctx, s.queries, "businesses", key, func(ctx context.Context) (*models.BusinessList, error) {
		return s.api.ListBusinesses(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	result := *list
	if len(result.Businesses) == 0 && result.Message == "" {
		result.Message = noBusinessesMessage
	}

	return &result, nil
}

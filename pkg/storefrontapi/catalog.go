package storefrontapi

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/go-resty/resty/v2"
)

var citySeparators = regexp.MustCompile(`[\s/]`)

// NormalizeCity turns a display city like "Lagos Island" or "Ibadan/Oyo" into
// the slug form the API filters on. Every whitespace character and every "/"
// becomes its own "-".
func NormalizeCity(city string) string {
	return citySeparators.ReplaceAllString(strings.TrimSpace(city), "-")
}

func (c *Client) ListProducts(ctx context.Context, params models.ProductListParams) (*models.ProductList, error) {
	query := map[string]string{
		"page":  strconv.Itoa(params.Page),
		"limit": strconv.Itoa(params.Limit),
	}
	if params.State != "" {
		query["state"] = params.State
	}
	if city := NormalizeCity(params.City); city != "" {
		query["city"] = city
	}
	if params.Categories != "" {
		query["categories"] = params.Categories
	}
	if params.Search != "" {
		query["search"] = params.Search
	}

	resp, err := c.do(ctx, "products.list", func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(query).Get("/products")
	})
	if err != nil {
		return nil, err
	}

	var list models.ProductList
	if err := decode(resp, &list); err != nil {
		return nil, err
	}
	if list.Products == nil {
		list.Products = []models.Product{}
	}

	return &list, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	resp, err := c.do(ctx, "products.get", func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("id", id).Get("/products/{id}")
	})
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decode(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := c.do(ctx, "categories.list", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/categories")
	})
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := decode(resp, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// ListBusinesses sends businessType when set and falls back to category.
func (c *Client) ListBusinesses(ctx context.Context, params models.BusinessListParams) (*models.BusinessList, error) {
	query := map[string]string{}
	if city := NormalizeCity(params.City); city != "" {
		query["city"] = city
	}
	if params.State != "" {
		query["state"] = params.State
	}
	switch {
	case params.BusinessType != "":
		query["businessType"] = params.BusinessType
	case params.Category != "":
		query["category"] = params.Category
	}
	if params.Subcategory != "" {
		query["subcategory"] = params.Subcategory
	}

	resp, err := c.do(ctx, "businesses.list", func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(query).Get("/businesses")
	})
	if err != nil {
		return nil, err
	}

	var list models.BusinessList
	if err := decode(resp, &list); err != nil {
		return nil, err
	}
	if list.Businesses == nil {
		list.Businesses = []models.Business{}
	}

	return &list, nil
}

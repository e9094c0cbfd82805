package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCatalogTest(t *testing.T) (*mocks.MockCatalogService, *handlers.CatalogHandler) {
	mockCatalog := mocks.NewMockCatalogService(t)
	return mockCatalog, handlers.NewCatalogHandler(mockCatalog)
}

func TestListProducts(t *testing.T) {
	t.Run("Success - Defaults Applied", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?city=Ikeja&state=Lagos", nil, nil)
		rr := httptest.NewRecorder()

		expected := models.ProductListParams{Page: 1, Limit: 20, City: "Ikeja", State: "Lagos"}
		mockCatalog.On("ListProducts", mock.Anything, expected).
			Return(&models.ProductList{Products: []models.Product{{ID: "p-1", Name: "Jollof Rice", Price: 2500}}, Total: 1}, nil).Once()

		// Act
		h.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.ProductList
		resp := testutils.DecodeData(t, rr, &got)
		assert.True(t, resp.Success)
		assert.Len(t, got.Products, 1)
	})

	t.Run("Success - Filters Passed Through", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?page=2&limit=50&categories=rice,soup&search=jollof", nil, nil)
		rr := httptest.NewRecorder()

		expected := models.ProductListParams{Page: 2, Limit: 50, Categories: "rice,soup", Search: "jollof"}
		mockCatalog.On("ListProducts", mock.Anything, expected).
			Return(&models.ProductList{Products: []models.Product{}, Message: "No products found"}, nil).Once()

		// Act
		h.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Invalid Page Falls Back", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?page=abc&limit=-3", nil, nil)
		rr := httptest.NewRecorder()

		mockCatalog.On("ListProducts", mock.Anything, models.ProductListParams{Page: 1, Limit: 20}).
			Return(&models.ProductList{Products: []models.Product{}}, nil).Once()

		// Act
		h.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Limit Too Large", func(t *testing.T) {
		// Arrange
		_, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?limit=500", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Upstream Unavailable", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products", nil, nil)
		rr := httptest.NewRecorder()

		mockCatalog.On("ListProducts", mock.Anything, mock.Anything).
			Return(nil, appErrors.ServiceUnavailableError("Catalog is temporarily unavailable")).Once()

		// Act
		h.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Found", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/p-1", nil, map[string]string{"id": "p-1"})
		rr := httptest.NewRecorder()

		mockCatalog.On("GetProduct", mock.Anything, "p-1").Return(&models.Product{ID: "p-1", Name: "Jollof Rice"}, nil).Once()

		// Act
		h.GetProduct()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/missing", nil, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		mockCatalog.On("GetProduct", mock.Anything, "missing").Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		h.GetProduct()(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListCategories(t *testing.T) {
	t.Run("Success - Nil Becomes Empty List", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/categories", nil, nil)
		rr := httptest.NewRecorder()

		mockCatalog.On("ListCategories", mock.Anything).Return(nil, nil).Once()

		// Act
		h.ListCategories()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"data":[]`)
	})
}

func TestListBusinesses(t *testing.T) {
	t.Run("Success - Query Mapped", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/businesses?city=Ikeja&businessType=restaurant&subcategory=grill", nil, nil)
		rr := httptest.NewRecorder()

		expected := models.BusinessListParams{City: "Ikeja", BusinessType: "restaurant", Subcategory: "grill"}
		mockCatalog.On("ListBusinesses", mock.Anything, expected).
			Return(&models.BusinessList{Businesses: []models.Business{{ID: "b-1", Name: "Mama Put"}}}, nil).Once()

		// Act
		h.ListBusinesses()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.BusinessList
		testutils.DecodeData(t, rr, &got)
		assert.Equal(t, "Mama Put", got.Businesses[0].Name)
	})

	t.Run("Failure - Upstream Error", func(t *testing.T) {
		// Arrange
		mockCatalog, h := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/businesses", nil, nil)
		rr := httptest.NewRecorder()

		mockCatalog.On("ListBusinesses", mock.Anything, mock.Anything).
			Return(nil, appErrors.ThirdPartyError("Failed to load businesses")).Once()

		// Act
		h.ListBusinesses()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

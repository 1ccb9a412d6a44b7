package handlers_test

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateProduct(t *testing.T) {
	staffID := uuid.New()

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		productService := mocks.NewMockProductService(t)
		productHandler := handlers.NewProductHandler(productService)
		expected := &models.Product{ID: uuid.New(), Name: "Trail Runner", OldPrice: decimal.RequireFromString("100.00")}

		productService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Name == "Trail Runner" && req.Discount
		})).Return(expected, nil).Once()

		body := `{"name":"Trail Runner","discount":true}`
		req := testutils.CreateStaffRequest(http.MethodPost, "/products", strings.NewReader(body), staffID, nil)
		rr := httptest.NewRecorder()

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Product
		testutils.DecodeResponseData(t, rr, &got)
		assert.Equal(t, expected.ID, got.ID)
		assert.Equal(t, "100", got.OldPrice.String())
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		// Arrange
		productService := mocks.NewMockProductService(t)
		productHandler := handlers.NewProductHandler(productService)
		req := testutils.CreateStaffRequest(http.MethodPost, "/products", strings.NewReader(`{"description":"no name"}`), staffID, nil)
		rr := httptest.NewRecorder()

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, testutils.DecodeErrorCode(t, rr))
		productService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Bad JSON", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		req := testutils.CreateStaffRequest(http.MethodPost, "/products", strings.NewReader("{invalid json"), staffID, nil)
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Duplicate Slug", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		productService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Product slug already exists")).Once()

		req := testutils.CreateStaffRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"A","slug":"a"}`), staffID, nil)
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, testutils.DecodeErrorCode(t, rr))
	})
}

func TestGetProduct(t *testing.T) {
	id := uuid.New()

	t.Run("Success - Found", func(t *testing.T) {
		// Arrange
		productService := mocks.NewMockProductService(t)
		productService.On("GetProductByID", mock.Anything, id).
			Return(&models.Product{ID: id, Name: "Sock", Price: decimal.RequireFromString("3.50")}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products/"+id.String(), nil, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		// Act
		handlers.NewProductHandler(productService).GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		testutils.DecodeResponseData(t, rr, &got)
		assert.Equal(t, "3.5", got.Price.String())
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		productService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		productService.On("GetProductByID", mock.Anything, id).
			Return(nil, appErrors.NotFoundError("Product not found").WithError(sql.ErrNoRows)).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products/"+id.String(), nil, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListProducts(t *testing.T) {
	categoryID := uuid.New()

	t.Run("Success - Filters Forwarded", func(t *testing.T) {
		// Arrange
		productService := mocks.NewMockProductService(t)
		productService.On("ListProducts", mock.Anything, models.ProductFilter{
			Page: 2, PageSize: 5, Search: "shoe", CategoryID: &categoryID, Ordering: "-old_price",
		}).Return([]*models.Product{{Name: "Shoe"}}, 6, nil).Once()

		target := "/products?page=2&pageSize=5&search=shoe&ordering=-old_price&category=" + categoryID.String()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, target, nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handlers.NewProductHandler(productService).ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var page models.PaginatedResponse
		testutils.DecodeResponseData(t, rr, &page)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 5, page.PageSize)
	})

	t.Run("Failure - Unknown Ordering", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products?ordering=name", nil, nil)
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Invalid Category", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products?category=shoes", nil, nil)
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	staffID, id := uuid.New(), uuid.New()
	params := map[string]string{"id": id.String()}

	t.Run("Success - Updated", func(t *testing.T) {
		// Arrange
		productService := mocks.NewMockProductService(t)
		productService.On("UpdateProduct", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateProductRequest) bool {
			return req.Name != nil && *req.Name == "Renamed" && req.Image == nil
		})).Return(&models.Product{ID: id, Name: "Renamed"}, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodPut, "/products/"+id.String(), strings.NewReader(`{"name":"Renamed"}`), staffID, params)
		rr := httptest.NewRecorder()

		// Act
		handlers.NewProductHandler(productService).UpdateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Deleted", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		productService.On("DeleteProduct", mock.Anything, id).Return(nil).Once()

		req := testutils.CreateStaffRequest(http.MethodDelete, "/products/"+id.String(), nil, staffID, params)
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).DeleteProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Failure - Referenced By Orders", func(t *testing.T) {
		productService := mocks.NewMockProductService(t)
		productService.On("DeleteProduct", mock.Anything, id).
			Return(appErrors.BadRequestError("Product is referenced by existing orders")).Once()

		req := testutils.CreateStaffRequest(http.MethodDelete, "/products/"+id.String(), nil, staffID, params)
		rr := httptest.NewRecorder()

		handlers.NewProductHandler(productService).DeleteProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCategoryHandler(t *testing.T) {
	staffID, id := uuid.New(), uuid.New()
	params := map[string]string{"id": id.String()}

	t.Run("Success - Create", func(t *testing.T) {
		// Arrange
		categoryService := mocks.NewMockCategoryService(t)
		categoryService.On("CreateCategory", mock.Anything, mock.MatchedBy(func(req *models.CreateCategoryRequest) bool {
			return req.Title == "Shoes"
		})).Return(&models.Category{ID: id, Title: "Shoes"}, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodPost, "/categories", strings.NewReader(`{"title":"Shoes"}`), staffID, nil)
		rr := httptest.NewRecorder()

		// Act
		handlers.NewCategoryHandler(categoryService).CreateCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Category
		testutils.DecodeResponseData(t, rr, &got)
		assert.Equal(t, id, got.ID)
	})

	t.Run("Failure - Title Too Long", func(t *testing.T) {
		categoryService := mocks.NewMockCategoryService(t)
		body := bytes.NewReader([]byte(`{"title":"` + strings.Repeat("x", 201) + `"}`))
		req := testutils.CreateStaffRequest(http.MethodPost, "/categories", body, staffID, nil)
		rr := httptest.NewRecorder()

		handlers.NewCategoryHandler(categoryService).CreateCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field Title must be at most 200 characters")
	})

	t.Run("Success - Get", func(t *testing.T) {
		categoryService := mocks.NewMockCategoryService(t)
		categoryService.On("GetCategoryByID", mock.Anything, id).Return(&models.Category{ID: id}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/categories/"+id.String(), nil, params)
		rr := httptest.NewRecorder()

		handlers.NewCategoryHandler(categoryService).GetCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - List", func(t *testing.T) {
		categoryService := mocks.NewMockCategoryService(t)
		categoryService.On("ListCategories", mock.Anything).Return([]*models.Category{{Title: "A"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/categories", nil, nil)
		rr := httptest.NewRecorder()

		handlers.NewCategoryHandler(categoryService).ListCategories().ServeHTTP(rr, req)

		var got []models.Category
		testutils.DecodeResponseData(t, rr, &got)
		assert.Len(t, got, 1)
	})

	t.Run("Success - Update", func(t *testing.T) {
		categoryService := mocks.NewMockCategoryService(t)
		categoryService.On("UpdateCategory", mock.Anything, id, mock.Anything).Return(&models.Category{ID: id, Title: "B"}, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodPut, "/categories/"+id.String(), strings.NewReader(`{"title":"B"}`), staffID, params)
		rr := httptest.NewRecorder()

		handlers.NewCategoryHandler(categoryService).UpdateCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Delete Missing", func(t *testing.T) {
		categoryService := mocks.NewMockCategoryService(t)
		categoryService.On("DeleteCategory", mock.Anything, id).Return(appErrors.NotFoundError("Category not found")).Once()

		req := testutils.CreateStaffRequest(http.MethodDelete, "/categories/"+id.String(), nil, staffID, params)
		rr := httptest.NewRecorder()

		handlers.NewCategoryHandler(categoryService).DeleteCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReviewHandler(t *testing.T) {
	productID, reviewID := uuid.New(), uuid.New()

	t.Run("Success - Create", func(t *testing.T) {
		// Arrange
		reviewService := mocks.NewMockReviewService(t)
		reviewService.On("CreateReview", mock.Anything, productID, &models.CreateReviewRequest{Name: "Sam", Description: "Great"}).
			Return(&models.Review{ID: reviewID, ProductID: productID, Name: "Sam", Description: "Great"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/products/"+productID.String()+"/reviews",
			strings.NewReader(`{"name":"Sam","description":"Great"}`), map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		// Act
		handlers.NewReviewHandler(reviewService).CreateReview().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Missing Description", func(t *testing.T) {
		reviewService := mocks.NewMockReviewService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/products/"+productID.String()+"/reviews",
			strings.NewReader(`{"name":"Sam"}`), map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		handlers.NewReviewHandler(reviewService).CreateReview().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - List For Unknown Product", func(t *testing.T) {
		reviewService := mocks.NewMockReviewService(t)
		reviewService.On("ListReviews", mock.Anything, productID).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products/"+productID.String()+"/reviews", nil,
			map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		handlers.NewReviewHandler(reviewService).ListReviews().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Success - Get And Delete", func(t *testing.T) {
		reviewService := mocks.NewMockReviewService(t)
		params := map[string]string{"id": productID.String(), "reviewID": reviewID.String()}
		reviewService.On("GetReview", mock.Anything, productID, reviewID).Return(&models.Review{ID: reviewID}, nil).Once()
		reviewService.On("DeleteReview", mock.Anything, productID, reviewID).Return(nil).Once()

		getRR := httptest.NewRecorder()
		handlers.NewReviewHandler(reviewService).GetReview().ServeHTTP(getRR,
			testutils.CreateTestRequestWithoutContext(http.MethodGet, "/reviews", nil, params))

		deleteRR := httptest.NewRecorder()
		handlers.NewReviewHandler(reviewService).DeleteReview().ServeHTTP(deleteRR,
			testutils.CreateStaffRequest(http.MethodDelete, "/reviews", nil, uuid.New(), params))

		assert.Equal(t, http.StatusOK, getRR.Code)
		assert.Equal(t, http.StatusNoContent, deleteRR.Code)
	})
}

package handlers_test

import (
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateOrder(t *testing.T) {
	userID, cartID, orderID := uuid.New(), uuid.New(), uuid.New()
	body := `{"cart_id":"` + cartID.String() + `"}`
	viewer := models.Viewer{UserID: userID, Email: "test@example.com"}

	t.Run("Success - Order Placed", func(t *testing.T) {
		// Arrange
		orderService := mocks.NewMockOrderService(t)
		orderService.On("PlaceOrder", mock.Anything, cartID, viewer).
			Return(&models.Order{ID: orderID, OwnerID: userID, PaymentStatus: models.PaymentStatusPending}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/orders", strings.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handlers.NewOrderHandler(orderService).CreateOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Order
		testutils.DecodeResponseData(t, rr, &got)
		assert.Equal(t, orderID, got.ID)
		assert.Equal(t, models.PaymentStatusPending, got.PaymentStatus)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/orders", strings.NewReader(body), nil)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		orderService.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Cart", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/orders", strings.NewReader(`{}`), userID, nil)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		orderService.On("PlaceOrder", mock.Anything, cartID, viewer).Return(nil, appErrors.ValidationError("Cart is empty")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/orders", strings.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cart is empty")
	})

	t.Run("Failure - Conversion Rolled Back", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		orderService.On("PlaceOrder", mock.Anything, cartID, viewer).
			Return(nil, appErrors.ConversionFailedError("Failed to place order")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/orders", strings.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeConversionFailed, testutils.DecodeErrorCode(t, rr))
	})
}

func TestGetOrder(t *testing.T) {
	userID, orderID := uuid.New(), uuid.New()
	params := map[string]string{"id": orderID.String()}

	t.Run("Success - Own Order", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		orderService.On("GetOrder", mock.Anything, orderID, mock.MatchedBy(func(v models.Viewer) bool {
			return v.UserID == userID && !v.IsStaff
		})).Return(&models.Order{ID: orderID, OwnerID: userID}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/"+orderID.String(), nil, userID, params)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Foreign Order", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		orderService.On("GetOrder", mock.Anything, orderID, mock.Anything).Return(nil, appErrors.NotFoundError("Order not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/"+orderID.String(), nil, userID, params)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/x", nil, userID, map[string]string{"id": "x"})
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListOrders(t *testing.T) {
	staffID := uuid.New()

	t.Run("Success - Staff Listing", func(t *testing.T) {
		// Arrange
		orderService := mocks.NewMockOrderService(t)
		orderService.On("ListOrders", mock.Anything, mock.MatchedBy(func(v models.Viewer) bool { return v.IsStaff }), 1, 10).
			Return([]*models.Order{{ID: uuid.New()}, {ID: uuid.New()}}, 2, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/orders?pageSize=500", nil, staffID, nil)
		rr := httptest.NewRecorder()

		// Act
		handlers.NewOrderHandler(orderService).ListOrders().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var page models.PaginatedResponse
		testutils.DecodeResponseData(t, rr, &page)
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, 10, page.PageSize)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		orderService := mocks.NewMockOrderService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/orders", nil, nil)
		rr := httptest.NewRecorder()

		handlers.NewOrderHandler(orderService).ListOrders().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

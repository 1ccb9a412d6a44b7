package handlers_test

import (
	"encoding/json"
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
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Success - User Registered", func(t *testing.T) {
		// Arrange
		userService := mocks.NewMockUserService(t)
		userID := uuid.New()
		userService.On("Register", mock.Anything, &models.RegisterRequest{Email: "new@example.com", Password: "secret1"}).
			Return(&models.User{ID: userID, Email: "new@example.com", Password: "$2a$10$hash"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register",
			strings.NewReader(`{"email":"new@example.com","password":"secret1"}`), nil)
		rr := httptest.NewRecorder()

		// Act
		handlers.NewUserHandler(userService).Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotContains(t, rr.Body.String(), "$2a$10$hash")
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register",
			strings.NewReader(`{"email":"nope","password":"secret1"}`), nil)
		rr := httptest.NewRecorder()

		handlers.NewUserHandler(userService).Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "must be a valid email address")
	})

	t.Run("Failure - Email Taken", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		userService.On("Register", mock.Anything, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register",
			strings.NewReader(`{"email":"new@example.com","password":"secret1"}`), nil)
		rr := httptest.NewRecorder()

		handlers.NewUserHandler(userService).Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	body := `{"email":"a@example.com","password":"secret1"}`
	loginReq := &models.LoginRequest{Email: "a@example.com", Password: "secret1"}

	tests := []struct {
		name           string
		resp           *models.LoginResponse
		expectedStatus int
	}{
		{
			name:           "Success - Token Issued",
			resp:           &models.LoginResponse{Success: true, Token: "jwt", ExpiresIn: 3600},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Failure - Bad Credentials",
			resp:           &models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 2},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Failure - Rate Limited",
			resp:           &models.LoginResponse{Success: false, Message: "Too many login attempts. Please try again later.", RetryAfter: 40},
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			userService := mocks.NewMockUserService(t)
			userService.On("Login", mock.Anything, loginReq).Return(tt.resp, nil).Once()

			req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", strings.NewReader(body), nil)
			rr := httptest.NewRecorder()

			// Act
			handlers.NewUserHandler(userService).Login().ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rr.Code)

			var got models.LoginResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, *tt.resp, got)
		})
	}

	t.Run("Failure - Limiter Unavailable", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		userService.On("Login", mock.Anything, loginReq).Return(nil, appErrors.ExternalServiceError("Rate limit check failed")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", strings.NewReader(body), nil)
		rr := httptest.NewRecorder()

		handlers.NewUserHandler(userService).Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestMe(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Current User", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		userService.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Email: "test@example.com"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/users/me", nil, userID, nil)
		rr := httptest.NewRecorder()

		handlers.NewUserHandler(userService).Me().ServeHTTP(rr, req)

		var got models.User
		testutils.DecodeResponseData(t, rr, &got)
		assert.Equal(t, userID, got.ID)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/users/me", nil, nil)
		rr := httptest.NewRecorder()

		handlers.NewUserHandler(userService).Me().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/service/auth"
	"github.com/mlipatova/airgate/internal/session"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*auth.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.LoginResult), args.Error(1)
}

func (m *MockAuthUseCase) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// The cookie deadline comes straight from the issued session, not from a
// second clock reading in the handler.
func TestAuthHandler_login_CookieExpiresWithSession(t *testing.T) {
	expiresAt := time.Date(2025, 10, 20, 13, 0, 0, 0, time.UTC)
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, false)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"user@airline.com","password":"password123"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", c.Request.Context(), "user@airline.com", "password123").
		Return(&auth.LoginResult{
			User:      domain.User{ID: "2", Email: "user@airline.com", Role: domain.RoleUser},
			Token:     "issued-token",
			ExpiresAt: expiresAt,
		}, nil).Once()

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "issued-token", cookies[0].Value)
	assert.True(t, cookies[0].Expires.Equal(expiresAt),
		"cookie expires %v, session expires %v", cookies[0].Expires, expiresAt)

	mockService.AssertExpectations(t)
}

func TestAuthHandler_login_MissingFields(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, false)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"user@airline.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	mockService.AssertNotCalled(t, "Login")
}

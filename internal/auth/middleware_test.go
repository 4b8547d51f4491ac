package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input RegisterInput) (*domain.Profile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockAuthUseCase) SignIn(ctx context.Context, email, password string) (*domain.Session, *domain.Profile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.Get(1).(*domain.Profile), args.Error(2)
}

func (m *MockAuthUseCase) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthUseCase) Resolve(ctx context.Context, token string) (*domain.Profile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockAuthUseCase) ChangePassword(ctx context.Context, userID int64, newPassword, confirm string) error {
	args := m.Called(ctx, userID, newPassword, confirm)
	return args.Error(0)
}

const testCookie = "heliconnect_session"

func gateRequest(t *testing.T, svc AuthUseCase, token string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/guarded", RequireClient(svc, testCookie), func(c *gin.Context) {
		profile := ProfileFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": profile.ID})
	})

	req := httptest.NewRequest("GET", "/guarded", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func redirectOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	redirect, _ := body["redirect"].(string)
	return redirect
}

func TestRequireClient_NoSessionRedirectsToLogin(t *testing.T) {
	mockService := &MockAuthUseCase{}
	mockService.On("Resolve", mock.Anything, "").Return(nil, nil).Once()

	w := gateRequest(t, mockService, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, LoginPath, redirectOf(t, w))
}

func TestRequireClient_ExpiredSessionRedirectsToLogin(t *testing.T) {
	mockService := &MockAuthUseCase{}
	mockService.On("Resolve", mock.Anything, "stale").Return(nil, nil).Once()

	w := gateRequest(t, mockService, "stale")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, LoginPath, redirectOf(t, w))
}

func TestRequireClient_OperatorSentOffPlatform(t *testing.T) {
	mockService := &MockAuthUseCase{}
	operator := &domain.Profile{ID: 7, Role: domain.RoleOperator, PreferredLanguage: domain.LanguageFR}
	mockService.On("Resolve", mock.Anything, "tok").Return(operator, nil).Once()

	w := gateRequest(t, mockService, "tok")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, OffPlatformURL, redirectOf(t, w))
}

func TestRequireClient_AllowsClientAndSuperadmin(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleClient, domain.RoleSuperadmin} {
		t.Run(string(role), func(t *testing.T) {
			mockService := &MockAuthUseCase{}
			profile := &domain.Profile{ID: 42, Role: role}
			mockService.On("Resolve", mock.Anything, "tok").Return(profile, nil).Once()

			w := gateRequest(t, mockService, "tok")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "42")
		})
	}
}

func TestRequireClient_StoreFailureIsAnError(t *testing.T) {
	mockService := &MockAuthUseCase{}
	mockService.On("Resolve", mock.Anything, "tok").Return(nil, assert.AnError).Once()

	w := gateRequest(t, mockService, "tok")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPublicOnly_AuthenticatedVisitorIsBounced(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := &MockAuthUseCase{}
	mockService.On("Resolve", mock.Anything, "tok").Return(&domain.Profile{ID: 42, Role: domain.RoleClient}, nil).Once()

	router := gin.New()
	router.POST("/login", PublicOnly(mockService, testCookie), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/login", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, DefaultLandingPath, redirectOf(t, w))
}

func TestPublicOnly_AnonymousVisitorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := &MockAuthUseCase{}
	mockService.On("Resolve", mock.Anything, "").Return(nil, nil).Once()

	router := gin.New()
	router.POST("/login", PublicOnly(mockService, testCookie), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"coal-erp/internal/models"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	profiles map[string]*models.UserProfile
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *models.UserProfile, error) {
	return "", nil, services.ErrInvalidCredentials
}

func (s *stubAuthService) ResolveToken(_ context.Context, token string) (*models.UserProfile, error) {
	if profile, ok := s.profiles[token]; ok {
		return profile, nil
	}
	return nil, services.ErrUnauthorized
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func newTestRouter() (*gin.Engine, *stubAuthService) {
	gin.SetMode(gin.TestMode)
	auth := &stubAuthService{profiles: map[string]*models.UserProfile{
		"admin-token":     {ID: 1, Role: models.RoleAdmin},
		"warehouse-token": {ID: 2, Role: models.RoleWarehouseManager},
		"accounts-token":  {ID: 3, Role: models.RoleAccounts},
	}}

	router := gin.New()
	api := router.Group("/api", Authenticate(auth))
	api.GET("/warehouse/stock", RequireWarehouseManager(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	api.DELETE("/users/1", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router, auth
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/warehouse/stock", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/warehouse/stock", "unknown-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/warehouse/stock", "warehouse-token")
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin passes every departmental gate.
	w = doRequest(router, http.MethodGet, "/api/warehouse/stock", "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/warehouse/stock", "accounts-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Warehouse Manager cannot touch user management.
	w = doRequest(router, http.MethodDelete, "/api/users/1", "warehouse-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/users/1", "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

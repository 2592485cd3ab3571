package middleware

import (
	"net/http"
	"strings"

	"coal-erp/internal/models"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

// Authenticate resolves the bearer token and stores the caller's profile on
// the context for downstream handlers.
func Authenticate(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		profile, err := auth.ResolveToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("user", profile)
		c.Set("token", token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": services.ErrUnauthorized.Error(),
	})
}

// RequireRole allows the request through only when the authenticated user's
// role is in the allow-list. Must run after Authenticate.
func RequireRole(roles ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			abortUnauthorized(c)
			return
		}
		profile, ok := value.(*models.UserProfile)
		if !ok {
			abortUnauthorized(c)
			return
		}

		for _, role := range roles {
			if profile.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": services.ErrForbidden.Error(),
		})
	}
}

// Admin always passes the departmental gates.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

func RequireWarehouseManager() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleWarehouseManager)
}

func RequireTransportManager() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleTransportManager)
}

func RequireAccounts() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleAccounts)
}

func RequireManagement() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleManagement)
}

package handlers

import (
	"coal-erp/internal/models"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	token, profile, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"token": token, "user": profile})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}
	respondOK(c, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if !exists {
		respondError(c, services.ErrUnauthorized)
		return
	}
	if err := h.auth.Logout(c.Request.Context(), token.(string)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "logged out")
}

// currentUser reads the profile the auth middleware stored on the context.
func currentUser(c *gin.Context) (*models.UserProfile, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	profile, ok := value.(*models.UserProfile)
	return profile, ok
}

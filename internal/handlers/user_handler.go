package handlers

import (
	"strconv"

	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, users)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := h.users.CreateUser(req.Name, req.Email, req.Password, req.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

type updateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID uint   `json:"role_id"`
	Status string `json:"status"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := h.users.UpdateUser(id, req.Name, req.Email, req.RoleID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "user updated")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "user deleted")
}

func (h *UserHandler) Roles(c *gin.Context) {
	roles, err := h.users.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, roles)
}

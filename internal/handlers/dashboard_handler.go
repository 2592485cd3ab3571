package handlers

import (
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard services.DashboardService
}

func NewDashboardHandler(dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// Activity returns the recent records relevant to the caller's role.
func (h *DashboardHandler) Activity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, services.ErrUnauthorized)
		return
	}

	activity, err := h.dashboard.Activity(user.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, activity)
}

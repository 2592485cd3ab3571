package handlers

import (
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type WarehouseHandler struct {
	warehouse services.WarehouseService
}

func NewWarehouseHandler(warehouse services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouse: warehouse}
}

func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.warehouse.ListWarehouses()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, warehouses)
}

type createWarehouseRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Capacity float64 `json:"capacity"`
}

func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var req createWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := h.warehouse.CreateWarehouse(req.Name, req.Location, req.Capacity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *WarehouseHandler) ListGrades(c *gin.Context) {
	grades, err := h.warehouse.ListGrades()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, grades)
}

func (h *WarehouseHandler) ListStock(c *gin.Context) {
	stock, err := h.warehouse.ListStock()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stock)
}

type addStockRequest struct {
	WarehouseID uint    `json:"warehouse_id"`
	CoalGradeID uint    `json:"coal_grade_id"`
	Quantity    float64 `json:"quantity"`
}

func (h *WarehouseHandler) AddStock(c *gin.Context) {
	var req addStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := h.warehouse.AddStock(req.WarehouseID, req.CoalGradeID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "stock added"})
}

func (h *WarehouseHandler) ListMovements(c *gin.Context) {
	movements, err := h.warehouse.ListMovements()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, movements)
}

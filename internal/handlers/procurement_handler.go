package handlers

import (
	"coal-erp/internal/models"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type ProcurementHandler struct {
	procurement services.ProcurementService
}

func NewProcurementHandler(procurement services.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{procurement: procurement}
}

func (h *ProcurementHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.procurement.ListSuppliers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, suppliers)
}

type supplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status"`
}

func (h *ProcurementHandler) CreateSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := h.procurement.CreateSupplier(req.Name, req.ContactPerson, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *ProcurementHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.procurement.UpdateSupplier(id, req.Name, req.ContactPerson, req.Phone, req.Address, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "supplier updated")
}

func (h *ProcurementHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.procurement.DeleteSupplier(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "supplier deleted")
}

func (h *ProcurementHandler) ListOrders(c *gin.Context) {
	orders, err := h.procurement.ListPurchaseOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

type createPurchaseOrderRequest struct {
	SupplierID           uint               `json:"supplier_id"`
	OrderDate            string             `json:"order_date" binding:"required"`
	ExpectedDeliveryDate string             `json:"expected_delivery_date"`
	Items                []orderItemRequest `json:"items"`
}

func (h *ProcurementHandler) CreateOrder(c *gin.Context) {
	var req createPurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		respondBadRequest(c, "invalid order_date")
		return
	}
	expectedDelivery, err := parseDateOptional(req.ExpectedDeliveryDate)
	if err != nil {
		respondBadRequest(c, "invalid expected_delivery_date")
		return
	}

	id, err := h.procurement.CreatePurchaseOrder(req.SupplierID, orderDate, expectedDelivery, orderItemInputs(req.Items))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *ProcurementHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	if err := h.procurement.UpdatePurchaseOrderStatus(id, models.OrderStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "order status updated")
}

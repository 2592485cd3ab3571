package handlers

import (
	"coal-erp/internal/models"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SalesHandler struct {
	sales services.SalesService
}

func NewSalesHandler(sales services.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

func (h *SalesHandler) ListCustomers(c *gin.Context) {
	customers, err := h.sales.ListCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, customers)
}

type customerRequest struct {
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	Status        string          `json:"status"`
}

func (h *SalesHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := h.sales.CreateCustomer(req.Name, req.ContactPerson, req.Phone, req.Address, req.CreditLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *SalesHandler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.sales.UpdateCustomer(id, req.Name, req.ContactPerson, req.Phone, req.Address, req.CreditLimit, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "customer updated")
}

func (h *SalesHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.sales.DeleteCustomer(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "customer deleted")
}

func (h *SalesHandler) ListOrders(c *gin.Context) {
	orders, err := h.sales.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

type orderItemRequest struct {
	CoalGradeID uint            `json:"coal_grade_id"`
	Quantity    float64         `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

func orderItemInputs(items []orderItemRequest) []services.OrderItemInput {
	inputs := make([]services.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, services.OrderItemInput{
			CoalGradeID: item.CoalGradeID,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
	return inputs
}

type createSalesOrderRequest struct {
	CustomerID           uint               `json:"customer_id"`
	OrderDate            string             `json:"order_date" binding:"required"`
	RequiredDeliveryDate string             `json:"required_delivery_date"`
	Items                []orderItemRequest `json:"items"`
}

func (h *SalesHandler) CreateOrder(c *gin.Context) {
	var req createSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		respondBadRequest(c, "invalid order_date")
		return
	}
	requiredDelivery, err := parseDateOptional(req.RequiredDeliveryDate)
	if err != nil {
		respondBadRequest(c, "invalid required_delivery_date")
		return
	}

	id, err := h.sales.CreateOrder(req.CustomerID, orderDate, requiredDelivery, orderItemInputs(req.Items))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *SalesHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	if err := h.sales.UpdateOrderStatus(id, models.OrderStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "order status updated")
}

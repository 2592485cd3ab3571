package handlers

import (
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type FinanceHandler struct {
	finance services.FinanceService
}

func NewFinanceHandler(finance services.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

func (h *FinanceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.finance.ListInvoices()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, invoices)
}

type createInvoiceRequest struct {
	OrderID     uint            `json:"order_id"`
	InvoiceDate string          `json:"invoice_date" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *FinanceHandler) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		respondBadRequest(c, "invalid invoice_date")
		return
	}

	id, err := h.finance.CreateInvoice(req.OrderID, invoiceDate, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *FinanceHandler) ListPayments(c *gin.Context) {
	payments, err := h.finance.ListPayments()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, payments)
}

type recordPaymentRequest struct {
	InvoiceID   uint            `json:"invoice_id"`
	PaymentDate string          `json:"payment_date" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"payment_mode"`
}

func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		respondBadRequest(c, "invalid payment_date")
		return
	}

	id, err := h.finance.RecordPayment(req.InvoiceID, paymentDate, req.Amount, req.PaymentMode)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.finance.ListExpenses()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, expenses)
}

type createExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	ExpenseType string          `json:"expense_type"`
	Amount      decimal.Decimal `json:"amount"`
	TripID      *uint           `json:"trip_id"`
	Remarks     string          `json:"remarks"`
}

func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondBadRequest(c, "invalid date")
		return
	}

	id, err := h.finance.CreateExpense(date, req.ExpenseType, req.Amount, req.TripID, req.Remarks)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

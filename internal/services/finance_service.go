package services

import (
	"time"

	"coal-erp/internal/models"
	"coal-erp/internal/repository"

	"github.com/shopspring/decimal"
)

type FinanceService interface {
	ListInvoices() ([]models.Invoice, error)
	CreateInvoice(orderID uint, invoiceDate time.Time, amount decimal.Decimal) (uint, error)
	ListPayments() ([]models.Payment, error)
	RecordPayment(invoiceID uint, paymentDate time.Time, amount decimal.Decimal, paymentMode string) (uint, error)
	ListExpenses() ([]models.Expense, error)
	CreateExpense(date time.Time, expenseType string, amount decimal.Decimal, tripID *uint, remarks string) (uint, error)
}

type financeService struct {
	repo   repository.FinanceRepository
	orders repository.SalesOrderRepository
}

func NewFinanceService(repo repository.FinanceRepository, orders repository.SalesOrderRepository) FinanceService {
	return &financeService{repo: repo, orders: orders}
}

func (s *financeService) ListInvoices() ([]models.Invoice, error) {
	return s.repo.GetInvoices()
}

func (s *financeService) CreateInvoice(orderID uint, invoiceDate time.Time, amount decimal.Decimal) (uint, error) {
	if orderID == 0 {
		return 0, missingFields("order_id")
	}
	if !amount.IsPositive() {
		return 0, invalidInput("amount must be positive")
	}
	if _, err := s.orders.GetByID(orderID); err != nil {
		return 0, invalidInput("invalid order")
	}

	invoice := &models.Invoice{
		OrderID:     orderID,
		InvoiceDate: invoiceDate,
		Amount:      amount,
		Status:      models.InvoicePending,
	}
	if err := s.repo.CreateInvoice(invoice); err != nil {
		return 0, err
	}
	return invoice.ID, nil
}

func (s *financeService) ListPayments() ([]models.Payment, error) {
	return s.repo.GetPayments()
}

func (s *financeService) RecordPayment(invoiceID uint, paymentDate time.Time, amount decimal.Decimal, paymentMode string) (uint, error) {
	var missing []string
	if invoiceID == 0 {
		missing = append(missing, "invoice_id")
	}
	if paymentMode == "" {
		missing = append(missing, "payment_mode")
	}
	if len(missing) > 0 {
		return 0, missingFields(missing...)
	}
	if !amount.IsPositive() {
		return 0, invalidInput("amount must be positive")
	}

	invoice, err := s.repo.GetInvoiceByID(invoiceID)
	if err != nil {
		return 0, ErrNotFound
	}
	if !invoice.Status.CanTransitionTo(models.InvoicePaid) {
		return 0, invalidInput("invoice is already %q", invoice.Status)
	}

	payment := &models.Payment{
		InvoiceID:   invoiceID,
		PaymentDate: paymentDate,
		Amount:      amount,
		PaymentMode: paymentMode,
		Status:      models.PaymentCompleted,
	}
	if err := s.repo.RecordPayment(payment); err != nil {
		return 0, err
	}
	return payment.ID, nil
}

func (s *financeService) ListExpenses() ([]models.Expense, error) {
	return s.repo.GetExpenses()
}

func (s *financeService) CreateExpense(date time.Time, expenseType string, amount decimal.Decimal, tripID *uint, remarks string) (uint, error) {
	if expenseType == "" {
		return 0, missingFields("expense_type")
	}
	if !amount.IsPositive() {
		return 0, invalidInput("amount must be positive")
	}

	expense := &models.Expense{
		Date:        date,
		ExpenseType: expenseType,
		Amount:      amount,
		TripID:      tripID,
		Remarks:     remarks,
	}
	if err := s.repo.CreateExpense(expense); err != nil {
		return 0, err
	}
	return expense.ID, nil
}

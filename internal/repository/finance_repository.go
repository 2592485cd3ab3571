package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type FinanceRepository interface {
	GetInvoices() ([]models.Invoice, error)
	GetInvoiceByID(id uint) (*models.Invoice, error)
	CreateInvoice(invoice *models.Invoice) error
	RecordPayment(payment *models.Payment) error
	GetPayments() ([]models.Payment, error)
	GetExpenses() ([]models.Expense, error)
	CreateExpense(expense *models.Expense) error
}

type financeRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) FinanceRepository {
	return &financeRepository{db: db}
}

func (r *financeRepository) GetInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Preload("Order").Preload("Order.Customer").
		Order("invoice_date DESC").Find(&invoices).Error
	return invoices, err
}

func (r *financeRepository) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *financeRepository) CreateInvoice(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// RecordPayment inserts the payment and marks the invoice paid in one
// transaction.
func (r *financeRepository) RecordPayment(payment *models.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Invoice{}).
			Where("id = ?", payment.InvoiceID).
			Update("status", models.InvoicePaid).Error
	})
}

func (r *financeRepository) GetPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Preload("Invoice").Preload("Invoice.Order").Preload("Invoice.Order.Customer").
		Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

func (r *financeRepository) GetExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Preload("Trip").Preload("Trip.Vehicle").
		Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *financeRepository) CreateExpense(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoicePending: {InvoicePaid, InvoiceOverdue},
	InvoiceOverdue: {InvoicePaid},
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"not null"`
	InvoiceDate time.Time       `json:"invoice_date" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Status      InvoiceStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Order SalesOrder `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
)

type Payment struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	InvoiceID   uint            `json:"invoice_id" gorm:"not null"`
	PaymentDate time.Time       `json:"payment_date" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentMode string          `json:"payment_mode" gorm:"not null"` // cash, cheque, bank_transfer, upi
	Status      string          `json:"status" gorm:"default:'completed'"`
	CreatedAt   time.Time       `json:"created_at"`

	Invoice Invoice `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
}

type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Date        time.Time       `json:"date" gorm:"not null"`
	ExpenseType string          `json:"expense_type" gorm:"not null"` // fuel, toll, maintenance, loading, other
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	TripID      *uint           `json:"trip_id,omitempty"`
	Remarks     string          `json:"remarks"`
	CreatedAt   time.Time       `json:"created_at"`

	Trip *Trip `json:"trip,omitempty" gorm:"foreignKey:TripID"`
}

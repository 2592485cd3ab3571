package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderDispatched OrderStatus = "dispatched"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the legal transition table shared by purchase and sales
// orders. Terminal states have no entry.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderDispatched, OrderCancelled},
	OrderDispatched: {OrderDelivered, OrderCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDispatched, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PurchaseOrder struct {
	ID                   uint        `json:"id" gorm:"primaryKey"`
	PONumber             string      `json:"po_number" gorm:"unique;not null"`
	SupplierID           uint        `json:"supplier_id" gorm:"not null"`
	OrderDate            time.Time   `json:"order_date" gorm:"not null"`
	ExpectedDeliveryDate *time.Time  `json:"expected_delivery_date,omitempty"`
	TotalQuantity        float64     `json:"total_quantity" gorm:"not null"`
	Status               OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	Supplier Supplier            `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Items    []PurchaseOrderItem `json:"items,omitempty" gorm:"foreignKey:POID"`
}

type PurchaseOrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	POID        uint            `json:"po_id" gorm:"not null;index"`
	CoalGradeID uint            `json:"coal_grade_id" gorm:"not null"`
	Quantity    float64         `json:"quantity" gorm:"not null"`
	Rate        decimal.Decimal `json:"rate" gorm:"type:decimal(12,2);not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`

	CoalGrade CoalGrade `json:"coal_grade,omitempty" gorm:"foreignKey:CoalGradeID"`
}

type SalesOrder struct {
	ID                   uint        `json:"id" gorm:"primaryKey"`
	CustomerID           uint        `json:"customer_id" gorm:"not null"`
	OrderDate            time.Time   `json:"order_date" gorm:"not null"`
	RequiredDeliveryDate *time.Time  `json:"required_delivery_date,omitempty"`
	TotalQuantity        float64     `json:"total_quantity" gorm:"not null"`
	Status               OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	Customer Customer         `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []SalesOrderItem `json:"items,omitempty" gorm:"foreignKey:SalesOrderID"`
}

type SalesOrderItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	SalesOrderID uint            `json:"sales_order_id" gorm:"not null;index"`
	CoalGradeID  uint            `json:"coal_grade_id" gorm:"not null"`
	Quantity     float64         `json:"quantity" gorm:"not null"`
	Rate         decimal.Decimal `json:"rate" gorm:"type:decimal(12,2);not null"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`

	CoalGrade CoalGrade `json:"coal_grade,omitempty" gorm:"foreignKey:CoalGradeID"`
}

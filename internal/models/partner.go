package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PartnerActive   = "active"
	PartnerInactive = "inactive"
)

type Supplier struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	ContactPerson string    `json:"contact_person" gorm:"not null"`
	Phone         string    `json:"phone" gorm:"not null"`
	Address       string    `json:"address"`
	Status        string    `json:"status" gorm:"default:'active'"` // active, inactive
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Customer struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"not null"`
	ContactPerson string          `json:"contact_person" gorm:"not null"`
	Phone         string          `json:"phone" gorm:"not null"`
	Address       string          `json:"address"`
	CreditLimit   decimal.Decimal `json:"credit_limit" gorm:"type:decimal(12,2);default:0"`
	Status        string          `json:"status" gorm:"default:'active'"` // active, inactive
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

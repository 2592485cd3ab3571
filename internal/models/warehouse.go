package models

import "time"

type CoalGrade struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	GradeName   string `json:"grade_name" gorm:"unique;not null"`
	Description string `json:"description"`
}

type Warehouse struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location"`
	Capacity  float64   `json:"capacity"` // tonnes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stock holds the available quantity per (warehouse, grade) pair. The pair is
// unique; add-stock upserts against it.
type Stock struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	WarehouseID       uint      `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_warehouse_grade"`
	CoalGradeID       uint      `json:"coal_grade_id" gorm:"not null;uniqueIndex:idx_warehouse_grade"`
	QuantityAvailable float64   `json:"quantity_available" gorm:"not null;default:0"`
	UpdatedAt         time.Time `json:"updated_at"`

	Warehouse Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
	CoalGrade CoalGrade `json:"coal_grade,omitempty" gorm:"foreignKey:CoalGradeID"`
}

const (
	MovementIn  = "IN"
	MovementOut = "OUT"
)

// StockMovement is an append-only log row per stock change.
type StockMovement struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StockID      uint      `json:"stock_id" gorm:"not null"`
	MovementType string    `json:"movement_type" gorm:"not null"` // IN, OUT
	Quantity     float64   `json:"quantity" gorm:"not null"`
	ReferenceID  *uint     `json:"reference_id,omitempty"`
	Remarks      string    `json:"remarks"`
	CreatedAt    time.Time `json:"created_at"`

	Stock Stock `json:"stock,omitempty" gorm:"foreignKey:StockID"`
}

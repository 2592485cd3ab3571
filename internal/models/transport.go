package models

import "time"

const (
	VehicleActive      = "active"
	VehicleMaintenance = "maintenance"
	VehicleInactive    = "inactive"
)

type Vehicle struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VehicleNo   string    `json:"vehicle_no" gorm:"unique;not null"`
	Capacity    float64   `json:"capacity"` // tonnes
	DriverName  string    `json:"driver_name"`
	DriverPhone string    `json:"driver_phone"`
	Status      string    `json:"status" gorm:"default:'active'"` // active, maintenance, inactive
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TripStatus string

const (
	TripScheduled TripStatus = "scheduled"
	TripInTransit TripStatus = "in_transit"
	TripDelivered TripStatus = "delivered"
	TripCancelled TripStatus = "cancelled"
)

var tripTransitions = map[TripStatus][]TripStatus{
	TripScheduled: {TripInTransit, TripCancelled},
	TripInTransit: {TripDelivered, TripCancelled},
}

func (s TripStatus) Valid() bool {
	switch s {
	case TripScheduled, TripInTransit, TripDelivered, TripCancelled:
		return true
	}
	return false
}

func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, allowed := range tripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Trip struct {
	ID                     uint       `json:"id" gorm:"primaryKey"`
	VehicleID              uint       `json:"vehicle_id" gorm:"not null"`
	SourceWarehouseID      uint       `json:"source_warehouse_id" gorm:"not null"`
	DestinationWarehouseID uint       `json:"destination_warehouse_id" gorm:"not null"`
	CoalGradeID            uint       `json:"coal_grade_id" gorm:"not null"`
	Quantity               float64    `json:"quantity" gorm:"not null"`
	TripDate               time.Time  `json:"trip_date" gorm:"not null"`
	Status                 TripStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	Vehicle              Vehicle   `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	SourceWarehouse      Warehouse `json:"source_warehouse,omitempty" gorm:"foreignKey:SourceWarehouseID"`
	DestinationWarehouse Warehouse `json:"destination_warehouse,omitempty" gorm:"foreignKey:DestinationWarehouseID"`
	CoalGrade            CoalGrade `json:"coal_grade,omitempty" gorm:"foreignKey:CoalGradeID"`
}

package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type TransportRepository interface {
	GetVehicles() ([]models.Vehicle, error)
	CreateVehicle(vehicle *models.Vehicle) error
	GetTrips() ([]models.Trip, error)
	GetTripByID(id uint) (*models.Trip, error)
	CreateTrip(trip *models.Trip) error
	UpdateTripStatus(id uint, status models.TripStatus) (int64, error)
}

type transportRepository struct {
	db *gorm.DB
}

func NewTransportRepository(db *gorm.DB) TransportRepository {
	return &transportRepository{db: db}
}

func (r *transportRepository) GetVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Order("id").Find(&vehicles).Error
	return vehicles, err
}

func (r *transportRepository) CreateVehicle(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *transportRepository) GetTrips() ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.Preload("Vehicle").Preload("SourceWarehouse").Preload("DestinationWarehouse").
		Preload("CoalGrade").Order("trip_date DESC").Find(&trips).Error
	return trips, err
}

func (r *transportRepository) GetTripByID(id uint) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.First(&trip, id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *transportRepository) CreateTrip(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

func (r *transportRepository) UpdateTripStatus(id uint, status models.TripStatus) (int64, error) {
	result := r.db.Model(&models.Trip{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

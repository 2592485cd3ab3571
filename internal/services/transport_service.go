package services

import (
	"time"

	"coal-erp/internal/models"
	"coal-erp/internal/repository"
)

type TransportService interface {
	ListVehicles() ([]models.Vehicle, error)
	CreateVehicle(vehicleNo string, capacity float64, driverName, driverPhone string) (uint, error)
	ListTrips() ([]models.Trip, error)
	CreateTrip(vehicleID, sourceID, destinationID, gradeID uint, quantity float64, tripDate time.Time) (uint, error)
	UpdateTripStatus(id uint, status models.TripStatus) error
}

type transportService struct {
	repo repository.TransportRepository
}

func NewTransportService(repo repository.TransportRepository) TransportService {
	return &transportService{repo: repo}
}

func (s *transportService) ListVehicles() ([]models.Vehicle, error) {
	return s.repo.GetVehicles()
}

func (s *transportService) CreateVehicle(vehicleNo string, capacity float64, driverName, driverPhone string) (uint, error) {
	if vehicleNo == "" {
		return 0, missingFields("vehicle_no")
	}
	if capacity <= 0 {
		return 0, invalidInput("capacity must be positive")
	}

	vehicle := &models.Vehicle{
		VehicleNo:   vehicleNo,
		Capacity:    capacity,
		DriverName:  driverName,
		DriverPhone: driverPhone,
		Status:      models.VehicleActive,
	}
	if err := s.repo.CreateVehicle(vehicle); err != nil {
		return 0, err
	}
	return vehicle.ID, nil
}

func (s *transportService) ListTrips() ([]models.Trip, error) {
	return s.repo.GetTrips()
}

func (s *transportService) CreateTrip(vehicleID, sourceID, destinationID, gradeID uint, quantity float64, tripDate time.Time) (uint, error) {
	var missing []string
	if vehicleID == 0 {
		missing = append(missing, "vehicle_id")
	}
	if sourceID == 0 {
		missing = append(missing, "source_warehouse_id")
	}
	if destinationID == 0 {
		missing = append(missing, "destination_warehouse_id")
	}
	if gradeID == 0 {
		missing = append(missing, "coal_grade_id")
	}
	if len(missing) > 0 {
		return 0, missingFields(missing...)
	}
	if quantity <= 0 {
		return 0, invalidInput("quantity must be positive")
	}
	if sourceID == destinationID {
		return 0, invalidInput("source and destination warehouses must differ")
	}

	trip := &models.Trip{
		VehicleID:              vehicleID,
		SourceWarehouseID:      sourceID,
		DestinationWarehouseID: destinationID,
		CoalGradeID:            gradeID,
		Quantity:               quantity,
		TripDate:               tripDate,
		Status:                 models.TripScheduled,
	}
	if err := s.repo.CreateTrip(trip); err != nil {
		return 0, err
	}
	return trip.ID, nil
}

func (s *transportService) UpdateTripStatus(id uint, status models.TripStatus) error {
	if !status.Valid() {
		return invalidInput("invalid trip status %q", status)
	}

	trip, err := s.repo.GetTripByID(id)
	if err != nil {
		return ErrNotFound
	}
	if !trip.Status.CanTransitionTo(status) {
		return invalidInput("illegal status transition from %q to %q", trip.Status, status)
	}

	affected, err := s.repo.UpdateTripStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package services

import (
	"testing"
	"time"

	"coal-erp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memTransportRepo struct {
	vehicles []models.Vehicle
	trips    map[uint]*models.Trip
	nextID   uint
}

func newMemTransportRepo() *memTransportRepo {
	return &memTransportRepo{trips: make(map[uint]*models.Trip), nextID: 1}
}

func (r *memTransportRepo) GetVehicles() ([]models.Vehicle, error) { return r.vehicles, nil }

func (r *memTransportRepo) CreateVehicle(vehicle *models.Vehicle) error {
	vehicle.ID = uint(len(r.vehicles) + 1)
	r.vehicles = append(r.vehicles, *vehicle)
	return nil
}

func (r *memTransportRepo) GetTrips() ([]models.Trip, error) {
	var out []models.Trip
	for _, trip := range r.trips {
		out = append(out, *trip)
	}
	return out, nil
}

func (r *memTransportRepo) GetTripByID(id uint) (*models.Trip, error) {
	if trip, ok := r.trips[id]; ok {
		return trip, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memTransportRepo) CreateTrip(trip *models.Trip) error {
	trip.ID = r.nextID
	r.nextID++
	r.trips[trip.ID] = trip
	return nil
}

func (r *memTransportRepo) UpdateTripStatus(id uint, status models.TripStatus) (int64, error) {
	if trip, ok := r.trips[id]; ok {
		trip.Status = status
		return 1, nil
	}
	return 0, nil
}

func TestCreateVehicle(t *testing.T) {
	repo := newMemTransportRepo()
	svc := NewTransportService(repo)

	id, err := svc.CreateVehicle("MH04AB1234", 25, "Ramesh", "9876500001")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleActive, repo.vehicles[id-1].Status)

	_, err = svc.CreateVehicle("", 25, "", "")
	assert.True(t, IsValidation(err))

	_, err = svc.CreateVehicle("MH04AB1235", 0, "", "")
	assert.True(t, IsValidation(err))
}

func TestCreateTripValidation(t *testing.T) {
	svc := NewTransportService(newMemTransportRepo())

	_, err := svc.CreateTrip(0, 0, 0, 0, 10, time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "vehicle_id")
	assert.Contains(t, err.Error(), "coal_grade_id")

	_, err = svc.CreateTrip(1, 2, 2, 1, 10, time.Now())
	assert.True(t, IsValidation(err))

	_, err = svc.CreateTrip(1, 2, 3, 1, 0, time.Now())
	assert.True(t, IsValidation(err))
}

func TestTripStatusLifecycle(t *testing.T) {
	repo := newMemTransportRepo()
	svc := NewTransportService(repo)

	id, err := svc.CreateTrip(1, 2, 3, 1, 18.5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.TripScheduled, repo.trips[id].Status)

	// scheduled -> delivered skips in_transit.
	err = svc.UpdateTripStatus(id, models.TripDelivered)
	assert.True(t, IsValidation(err))

	require.NoError(t, svc.UpdateTripStatus(id, models.TripInTransit))
	require.NoError(t, svc.UpdateTripStatus(id, models.TripDelivered))

	err = svc.UpdateTripStatus(id, models.TripCancelled)
	assert.True(t, IsValidation(err))

	assert.ErrorIs(t, svc.UpdateTripStatus(99, models.TripInTransit), ErrNotFound)
}

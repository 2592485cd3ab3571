package services

import (
	"testing"

	"coal-erp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWarehouseRepo struct {
	warehouses []models.Warehouse
	stock      map[[2]uint]float64
	movements  []models.StockMovement
}

func newMemWarehouseRepo() *memWarehouseRepo {
	return &memWarehouseRepo{stock: make(map[[2]uint]float64)}
}

func (r *memWarehouseRepo) GetWarehouses() ([]models.Warehouse, error) { return r.warehouses, nil }

func (r *memWarehouseRepo) CreateWarehouse(warehouse *models.Warehouse) error {
	warehouse.ID = uint(len(r.warehouses) + 1)
	r.warehouses = append(r.warehouses, *warehouse)
	return nil
}

func (r *memWarehouseRepo) GetGrades() ([]models.CoalGrade, error) { return nil, nil }

func (r *memWarehouseRepo) GetStock() ([]models.Stock, error) {
	var out []models.Stock
	for key, qty := range r.stock {
		out = append(out, models.Stock{WarehouseID: key[0], CoalGradeID: key[1], QuantityAvailable: qty})
	}
	return out, nil
}

func (r *memWarehouseRepo) AddStock(warehouseID, gradeID uint, quantity float64, remarks string) error {
	r.stock[[2]uint{warehouseID, gradeID}] += quantity
	r.movements = append(r.movements, models.StockMovement{
		MovementType: models.MovementIn,
		Quantity:     quantity,
		Remarks:      remarks,
	})
	return nil
}

func (r *memWarehouseRepo) GetMovements() ([]models.StockMovement, error) { return r.movements, nil }

func TestCreateWarehouseValidation(t *testing.T) {
	repo := newMemWarehouseRepo()
	svc := NewWarehouseService(repo)

	id, err := svc.CreateWarehouse("Dhanbad Yard", "Dhanbad", 5000)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	_, err = svc.CreateWarehouse("", "Dhanbad", 5000)
	assert.True(t, IsValidation(err))

	_, err = svc.CreateWarehouse("Ranchi Yard", "", -1)
	assert.True(t, IsValidation(err))
}

func TestAddStockUpserts(t *testing.T) {
	repo := newMemWarehouseRepo()
	svc := NewWarehouseService(repo)

	require.NoError(t, svc.AddStock(1, 2, 100))
	require.NoError(t, svc.AddStock(1, 2, 50.5))

	assert.Equal(t, 150.5, repo.stock[[2]uint{1, 2}])
	require.Len(t, repo.movements, 2)
	assert.Equal(t, models.MovementIn, repo.movements[0].MovementType)
}

func TestAddStockValidation(t *testing.T) {
	repo := newMemWarehouseRepo()
	svc := NewWarehouseService(repo)

	err := svc.AddStock(0, 0, 100)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "warehouse_id")
	assert.Contains(t, err.Error(), "coal_grade_id")

	err = svc.AddStock(1, 2, 0)
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.movements)
}

package services

import (
	"coal-erp/internal/models"
	"coal-erp/internal/repository"
)

type WarehouseService interface {
	ListWarehouses() ([]models.Warehouse, error)
	CreateWarehouse(name, location string, capacity float64) (uint, error)
	ListGrades() ([]models.CoalGrade, error)
	ListStock() ([]models.Stock, error)
	AddStock(warehouseID, gradeID uint, quantity float64) error
	ListMovements() ([]models.StockMovement, error)
}

type warehouseService struct {
	repo repository.WarehouseRepository
}

func NewWarehouseService(repo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{repo: repo}
}

func (s *warehouseService) ListWarehouses() ([]models.Warehouse, error) {
	return s.repo.GetWarehouses()
}

func (s *warehouseService) CreateWarehouse(name, location string, capacity float64) (uint, error) {
	if name == "" {
		return 0, missingFields("name")
	}
	if capacity < 0 {
		return 0, invalidInput("capacity cannot be negative")
	}

	warehouse := &models.Warehouse{Name: name, Location: location, Capacity: capacity}
	if err := s.repo.CreateWarehouse(warehouse); err != nil {
		return 0, err
	}
	return warehouse.ID, nil
}

func (s *warehouseService) ListGrades() ([]models.CoalGrade, error) {
	return s.repo.GetGrades()
}

func (s *warehouseService) ListStock() ([]models.Stock, error) {
	return s.repo.GetStock()
}

func (s *warehouseService) AddStock(warehouseID, gradeID uint, quantity float64) error {
	var missing []string
	if warehouseID == 0 {
		missing = append(missing, "warehouse_id")
	}
	if gradeID == 0 {
		missing = append(missing, "coal_grade_id")
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}
	if quantity <= 0 {
		return invalidInput("quantity must be positive")
	}

	return s.repo.AddStock(warehouseID, gradeID, quantity, "Manual stock addition")
}

func (s *warehouseService) ListMovements() ([]models.StockMovement, error) {
	return s.repo.GetMovements()
}

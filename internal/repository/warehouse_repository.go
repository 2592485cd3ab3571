package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type WarehouseRepository interface {
	GetWarehouses() ([]models.Warehouse, error)
	CreateWarehouse(warehouse *models.Warehouse) error
	GetGrades() ([]models.CoalGrade, error)
	GetStock() ([]models.Stock, error)
	AddStock(warehouseID, gradeID uint, quantity float64, remarks string) error
	GetMovements() ([]models.StockMovement, error)
}

type warehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) GetWarehouses() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.Order("id").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepository) CreateWarehouse(warehouse *models.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepository) GetGrades() ([]models.CoalGrade, error) {
	var grades []models.CoalGrade
	err := r.db.Order("id").Find(&grades).Error
	return grades, err
}

func (r *warehouseRepository) GetStock() ([]models.Stock, error) {
	var stock []models.Stock
	err := r.db.Preload("Warehouse").Preload("CoalGrade").
		Joins("JOIN warehouses ON warehouses.id = stocks.warehouse_id").
		Joins("JOIN coal_grades ON coal_grades.id = stocks.coal_grade_id").
		Order("warehouses.name, coal_grades.grade_name").
		Find(&stock).Error
	return stock, err
}

// AddStock upserts the (warehouse, grade) row and appends an IN movement,
// atomically.
func (r *warehouseRepository) AddStock(warehouseID, gradeID uint, quantity float64, remarks string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var stock models.Stock
		err := tx.Where("warehouse_id = ? AND coal_grade_id = ?", warehouseID, gradeID).First(&stock).Error
		switch {
		case err == nil:
			result := tx.Model(&stock).
				Update("quantity_available", gorm.Expr("quantity_available + ?", quantity))
			if result.Error != nil {
				return result.Error
			}
		case err == gorm.ErrRecordNotFound:
			stock = models.Stock{
				WarehouseID:       warehouseID,
				CoalGradeID:       gradeID,
				QuantityAvailable: quantity,
			}
			if err := tx.Create(&stock).Error; err != nil {
				return err
			}
		default:
			return err
		}

		movement := models.StockMovement{
			StockID:      stock.ID,
			MovementType: models.MovementIn,
			Quantity:     quantity,
			Remarks:      remarks,
		}
		return tx.Create(&movement).Error
	})
}

func (r *warehouseRepository) GetMovements() ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.db.Preload("Stock").Preload("Stock.Warehouse").Preload("Stock.CoalGrade").
		Order("created_at DESC").Find(&movements).Error
	return movements, err
}

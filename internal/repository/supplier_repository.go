package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	GetByID(id uint) (*models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	Update(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.First(&supplier, id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Order("id DESC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Supplier{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *supplierRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Supplier{}, id)
	return result.RowsAffected, result.Error
}

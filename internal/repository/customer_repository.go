package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	Update(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("id DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *customerRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Customer{}, id)
	return result.RowsAffected, result.Error
}

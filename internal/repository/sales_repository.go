package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type SalesOrderRepository interface {
	CreateWithItems(order *models.SalesOrder, items []models.SalesOrderItem) error
	GetByID(id uint) (*models.SalesOrder, error)
	GetAll() ([]models.SalesOrder, error)
	GetAllItems() ([]models.SalesOrderItem, error)
	UpdateStatus(id uint, status models.OrderStatus) (int64, error)
}

type salesOrderRepository struct {
	db *gorm.DB
}

func NewSalesOrderRepository(db *gorm.DB) SalesOrderRepository {
	return &salesOrderRepository{db: db}
}

func (r *salesOrderRepository) CreateWithItems(order *models.SalesOrder, items []models.SalesOrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SalesOrderID = order.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *salesOrderRepository) GetByID(id uint) (*models.SalesOrder, error) {
	var order models.SalesOrder
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.CoalGrade").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *salesOrderRepository) GetAll() ([]models.SalesOrder, error) {
	var orders []models.SalesOrder
	err := r.db.Preload("Customer").Preload("Items").Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *salesOrderRepository) GetAllItems() ([]models.SalesOrderItem, error) {
	var items []models.SalesOrderItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *salesOrderRepository) UpdateStatus(id uint, status models.OrderStatus) (int64, error) {
	result := r.db.Model(&models.SalesOrder{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

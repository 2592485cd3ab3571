package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	CreateWithItems(order *models.PurchaseOrder, items []models.PurchaseOrderItem) error
	GetByID(id uint) (*models.PurchaseOrder, error)
	GetAll() ([]models.PurchaseOrder, error)
	UpdateStatus(id uint, status models.OrderStatus) (int64, error)
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

// CreateWithItems inserts the order and its line items in one transaction so
// a failed item insert never leaves a parent row behind.
func (r *purchaseOrderRepository) CreateWithItems(order *models.PurchaseOrder, items []models.PurchaseOrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].POID = order.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *purchaseOrderRepository) GetByID(id uint) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items").Preload("Items.CoalGrade").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *purchaseOrderRepository) GetAll() ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items").Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepository) UpdateStatus(id uint, status models.OrderStatus) (int64, error) {
	result := r.db.Model(&models.PurchaseOrder{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

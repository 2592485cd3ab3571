package services

import (
	"fmt"
	"math/rand"
	"time"

	"coal-erp/internal/models"
	"coal-erp/internal/repository"

	"github.com/shopspring/decimal"
)

type ProcurementService interface {
	ListSuppliers() ([]models.Supplier, error)
	CreateSupplier(name, contactPerson, phone, address string) (uint, error)
	UpdateSupplier(id uint, name, contactPerson, phone, address, status string) error
	DeleteSupplier(id uint) error

	ListPurchaseOrders() ([]models.PurchaseOrder, error)
	CreatePurchaseOrder(supplierID uint, orderDate time.Time, expectedDelivery *time.Time, items []OrderItemInput) (uint, error)
	UpdatePurchaseOrderStatus(id uint, status models.OrderStatus) error
}

type procurementService struct {
	suppliers repository.SupplierRepository
	orders    repository.PurchaseOrderRepository
}

func NewProcurementService(suppliers repository.SupplierRepository, orders repository.PurchaseOrderRepository) ProcurementService {
	return &procurementService{suppliers: suppliers, orders: orders}
}

func (s *procurementService) ListSuppliers() ([]models.Supplier, error) {
	return s.suppliers.GetAll()
}

func (s *procurementService) CreateSupplier(name, contactPerson, phone, address string) (uint, error) {
	if err := validateCustomerFields(name, contactPerson, phone); err != nil {
		return 0, err
	}

	supplier := &models.Supplier{
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Address:       address,
		Status:        models.PartnerActive,
	}
	if err := s.suppliers.Create(supplier); err != nil {
		return 0, err
	}
	return supplier.ID, nil
}

func (s *procurementService) UpdateSupplier(id uint, name, contactPerson, phone, address, status string) error {
	if err := validateCustomerFields(name, contactPerson, phone); err != nil {
		return err
	}
	if status != models.PartnerActive && status != models.PartnerInactive {
		return invalidInput("invalid status %q", status)
	}

	affected, err := s.suppliers.Update(id, map[string]interface{}{
		"name":           name,
		"contact_person": contactPerson,
		"phone":          phone,
		"address":        address,
		"status":         status,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *procurementService) DeleteSupplier(id uint) error {
	affected, err := s.suppliers.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *procurementService) ListPurchaseOrders() ([]models.PurchaseOrder, error) {
	return s.orders.GetAll()
}

// generatePONumber produces PO/YYYY/MM/NNN numbers.
func generatePONumber(at time.Time) string {
	return fmt.Sprintf("PO/%s/%03d", at.Format("2006/01"), rand.Intn(1000))
}

func (s *procurementService) CreatePurchaseOrder(supplierID uint, orderDate time.Time, expectedDelivery *time.Time, items []OrderItemInput) (uint, error) {
	if supplierID == 0 {
		return 0, missingFields("supplier_id")
	}
	if err := validateOrderItems(items); err != nil {
		return 0, err
	}

	order := &models.PurchaseOrder{
		PONumber:             generatePONumber(time.Now()),
		SupplierID:           supplierID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expectedDelivery,
		TotalQuantity:        sumQuantities(items),
		Status:               models.OrderPending,
	}

	rows := make([]models.PurchaseOrderItem, 0, len(items))
	for _, item := range items {
		qty := decimal.NewFromFloat(item.Quantity)
		rows = append(rows, models.PurchaseOrderItem{
			CoalGradeID: item.CoalGradeID,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			TotalAmount: qty.Mul(item.Rate),
		})
	}

	if err := s.orders.CreateWithItems(order, rows); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *procurementService) UpdatePurchaseOrderStatus(id uint, status models.OrderStatus) error {
	if !status.Valid() {
		return invalidInput("invalid order status %q", status)
	}

	order, err := s.orders.GetByID(id)
	if err != nil {
		return ErrNotFound
	}
	if !order.Status.CanTransitionTo(status) {
		return invalidInput("illegal status transition from %q to %q", order.Status, status)
	}

	affected, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package services

import (
	"time"

	"coal-erp/internal/models"
	"coal-erp/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one submitted line item on a purchase or sales order.
type OrderItemInput struct {
	CoalGradeID uint
	Quantity    float64
	Rate        decimal.Decimal
}

func validateOrderItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return missingFields("items")
	}
	for _, item := range items {
		if item.CoalGradeID == 0 {
			return invalidInput("every item needs a coal_grade_id")
		}
		if item.Quantity <= 0 {
			return invalidInput("item quantity must be positive")
		}
		if item.Rate.IsNegative() {
			return invalidInput("item rate cannot be negative")
		}
	}
	return nil
}

func sumQuantities(items []OrderItemInput) float64 {
	var total float64
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

type SalesService interface {
	ListCustomers() ([]models.Customer, error)
	CreateCustomer(name, contactPerson, phone, address string, creditLimit decimal.Decimal) (uint, error)
	UpdateCustomer(id uint, name, contactPerson, phone, address string, creditLimit decimal.Decimal, status string) error
	DeleteCustomer(id uint) error

	ListOrders() ([]models.SalesOrder, error)
	CreateOrder(customerID uint, orderDate time.Time, requiredDelivery *time.Time, items []OrderItemInput) (uint, error)
	UpdateOrderStatus(id uint, status models.OrderStatus) error
}

type salesService struct {
	customers repository.CustomerRepository
	orders    repository.SalesOrderRepository
}

func NewSalesService(customers repository.CustomerRepository, orders repository.SalesOrderRepository) SalesService {
	return &salesService{customers: customers, orders: orders}
}

func (s *salesService) ListCustomers() ([]models.Customer, error) {
	return s.customers.GetAll()
}

func validateCustomerFields(name, contactPerson, phone string) error {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if contactPerson == "" {
		missing = append(missing, "contact_person")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}
	return nil
}

func (s *salesService) CreateCustomer(name, contactPerson, phone, address string, creditLimit decimal.Decimal) (uint, error) {
	if err := validateCustomerFields(name, contactPerson, phone); err != nil {
		return 0, err
	}

	customer := &models.Customer{
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Address:       address,
		CreditLimit:   creditLimit,
		Status:        models.PartnerActive,
	}
	if err := s.customers.Create(customer); err != nil {
		return 0, err
	}
	return customer.ID, nil
}

func (s *salesService) UpdateCustomer(id uint, name, contactPerson, phone, address string, creditLimit decimal.Decimal, status string) error {
	if err := validateCustomerFields(name, contactPerson, phone); err != nil {
		return err
	}
	if status != models.PartnerActive && status != models.PartnerInactive {
		return invalidInput("invalid status %q", status)
	}

	affected, err := s.customers.Update(id, map[string]interface{}{
		"name":           name,
		"contact_person": contactPerson,
		"phone":          phone,
		"address":        address,
		"credit_limit":   creditLimit,
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

func (s *salesService) DeleteCustomer(id uint) error {
	affected, err := s.customers.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *salesService) ListOrders() ([]models.SalesOrder, error) {
	return s.orders.GetAll()
}

func (s *salesService) CreateOrder(customerID uint, orderDate time.Time, requiredDelivery *time.Time, items []OrderItemInput) (uint, error) {
	if customerID == 0 {
		return 0, missingFields("customer_id")
	}
	if err := validateOrderItems(items); err != nil {
		return 0, err
	}

	order := &models.SalesOrder{
		CustomerID:           customerID,
		OrderDate:            orderDate,
		RequiredDeliveryDate: requiredDelivery,
		TotalQuantity:        sumQuantities(items),
		Status:               models.OrderPending,
	}

	rows := make([]models.SalesOrderItem, 0, len(items))
	for _, item := range items {
		qty := decimal.NewFromFloat(item.Quantity)
		rows = append(rows, models.SalesOrderItem{
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

func (s *salesService) UpdateOrderStatus(id uint, status models.OrderStatus) error {
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

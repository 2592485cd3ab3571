package services

import (
	"regexp"
	"testing"
	"time"

	"coal-erp/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memSupplierRepo struct {
	suppliers map[uint]*models.Supplier
	nextID    uint
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: make(map[uint]*models.Supplier), nextID: 1}
}

func (r *memSupplierRepo) Create(supplier *models.Supplier) error {
	supplier.ID = r.nextID
	r.nextID++
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *memSupplierRepo) GetByID(id uint) (*models.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSupplierRepo) GetAll() ([]models.Supplier, error) {
	var out []models.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSupplierRepo) Update(id uint, fields map[string]interface{}) (int64, error) {
	if _, ok := r.suppliers[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (r *memSupplierRepo) Delete(id uint) (int64, error) {
	if _, ok := r.suppliers[id]; !ok {
		return 0, nil
	}
	delete(r.suppliers, id)
	return 1, nil
}

type memPurchaseOrderRepo struct {
	orders map[uint]*models.PurchaseOrder
	items  []models.PurchaseOrderItem
	nextID uint
}

func newMemPurchaseOrderRepo() *memPurchaseOrderRepo {
	return &memPurchaseOrderRepo{orders: make(map[uint]*models.PurchaseOrder), nextID: 1}
}

func (r *memPurchaseOrderRepo) CreateWithItems(order *models.PurchaseOrder, items []models.PurchaseOrderItem) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	r.items = append(r.items, items...)
	return nil
}

func (r *memPurchaseOrderRepo) GetByID(id uint) (*models.PurchaseOrder, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPurchaseOrderRepo) GetAll() ([]models.PurchaseOrder, error) {
	var out []models.PurchaseOrder
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memPurchaseOrderRepo) UpdateStatus(id uint, status models.OrderStatus) (int64, error) {
	if o, ok := r.orders[id]; ok {
		o.Status = status
		return 1, nil
	}
	return 0, nil
}

func TestGeneratePONumberFormat(t *testing.T) {
	at := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	number := generatePONumber(at)
	assert.Regexp(t, regexp.MustCompile(`^PO/2026/03/\d{3}$`), number)
}

func TestCreatePurchaseOrder(t *testing.T) {
	orders := newMemPurchaseOrderRepo()
	svc := NewProcurementService(newMemSupplierRepo(), orders)

	id, err := svc.CreatePurchaseOrder(1, time.Now(), nil, []OrderItemInput{
		{CoalGradeID: 1, Quantity: 200, Rate: decimal.NewFromInt(3500)},
		{CoalGradeID: 2, Quantity: 100, Rate: decimal.NewFromInt(4100)},
	})
	require.NoError(t, err)

	order := orders.orders[id]
	assert.Equal(t, float64(300), order.TotalQuantity)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.NotEmpty(t, order.PONumber)

	_, err = svc.CreatePurchaseOrder(0, time.Now(), nil, []OrderItemInput{
		{CoalGradeID: 1, Quantity: 10, Rate: decimal.NewFromInt(3500)},
	})
	assert.True(t, IsValidation(err))
}

func TestSupplierCRUD(t *testing.T) {
	suppliers := newMemSupplierRepo()
	svc := NewProcurementService(suppliers, newMemPurchaseOrderRepo())

	id, err := svc.CreateSupplier("Coal India Ltd", "Anil Mehta", "9123456780", "Kolkata")
	require.NoError(t, err)
	assert.Equal(t, models.PartnerActive, suppliers.suppliers[id].Status)

	_, err = svc.CreateSupplier("", "Anil Mehta", "", "")
	assert.True(t, IsValidation(err))

	err = svc.UpdateSupplier(id, "Coal India Ltd", "Anil Mehta", "9123456780", "Kolkata", "dormant")
	assert.True(t, IsValidation(err))

	require.NoError(t, svc.UpdateSupplier(id, "Coal India Ltd", "Anil Mehta", "9123456780", "Kolkata", models.PartnerInactive))
	assert.ErrorIs(t, svc.UpdateSupplier(99, "X", "Y", "Z", "", models.PartnerActive), ErrNotFound)

	require.NoError(t, svc.DeleteSupplier(id))
	assert.ErrorIs(t, svc.DeleteSupplier(id), ErrNotFound)
}

package services

import (
	"coal-erp/internal/models"
	"coal-erp/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregate snapshot shown on the landing page.
type DashboardStats struct {
	TotalStock     float64         `json:"total_stock"`
	PendingOrders  int             `json:"pending_orders"`
	ActiveTrips    int             `json:"active_trips"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	OrderBookValue decimal.Decimal `json:"order_book_value"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
	Activity(role models.RoleName) (interface{}, error)
}

type dashboardService struct {
	warehouse repository.WarehouseRepository
	purchase  repository.PurchaseOrderRepository
	transport repository.TransportRepository
	finance   repository.FinanceRepository
	sales     repository.SalesOrderRepository
}

func NewDashboardService(
	warehouse repository.WarehouseRepository,
	purchase repository.PurchaseOrderRepository,
	transport repository.TransportRepository,
	finance repository.FinanceRepository,
	sales repository.SalesOrderRepository,
) DashboardService {
	return &dashboardService{
		warehouse: warehouse,
		purchase:  purchase,
		transport: transport,
		finance:   finance,
		sales:     sales,
	}
}

// ComputeStats folds the raw rows into the dashboard aggregates. Revenue
// counts paid invoices only; order book value is the sum of every sales order
// line regardless of status.
func ComputeStats(
	stock []models.Stock,
	purchaseOrders []models.PurchaseOrder,
	trips []models.Trip,
	invoices []models.Invoice,
	salesItems []models.SalesOrderItem,
) *DashboardStats {
	stats := &DashboardStats{
		TotalRevenue:   decimal.Zero,
		OrderBookValue: decimal.Zero,
	}

	for _, row := range stock {
		stats.TotalStock += row.QuantityAvailable
	}
	for _, order := range purchaseOrders {
		if order.Status == models.OrderPending {
			stats.PendingOrders++
		}
	}
	for _, trip := range trips {
		if trip.Status == models.TripInTransit {
			stats.ActiveTrips++
		}
	}
	for _, invoice := range invoices {
		if invoice.Status == models.InvoicePaid {
			stats.TotalRevenue = stats.TotalRevenue.Add(invoice.Amount)
		}
	}
	for _, item := range salesItems {
		stats.OrderBookValue = stats.OrderBookValue.Add(item.TotalAmount)
	}
	return stats
}

func (s *dashboardService) Stats() (*DashboardStats, error) {
	stock, err := s.warehouse.GetStock()
	if err != nil {
		return nil, err
	}
	purchaseOrders, err := s.purchase.GetAll()
	if err != nil {
		return nil, err
	}
	trips, err := s.transport.GetTrips()
	if err != nil {
		return nil, err
	}
	invoices, err := s.finance.GetInvoices()
	if err != nil {
		return nil, err
	}
	salesItems, err := s.sales.GetAllItems()
	if err != nil {
		return nil, err
	}

	return ComputeStats(stock, purchaseOrders, trips, invoices, salesItems), nil
}

const activityLimit = 3

// Activity returns the few most recent records relevant to the caller's role.
// List queries already sort newest first, so taking the head is enough.
func (s *dashboardService) Activity(role models.RoleName) (interface{}, error) {
	switch role {
	case models.RoleWarehouseManager:
		movements, err := s.warehouse.GetMovements()
		if err != nil {
			return nil, err
		}
		return head(movements), nil
	case models.RoleTransportManager:
		trips, err := s.transport.GetTrips()
		if err != nil {
			return nil, err
		}
		return head(trips), nil
	case models.RoleAccounts:
		invoices, err := s.finance.GetInvoices()
		if err != nil {
			return nil, err
		}
		return head(invoices), nil
	case models.RoleAdmin, models.RoleManagement:
		orders, err := s.sales.GetAll()
		if err != nil {
			return nil, err
		}
		return head(orders), nil
	default:
		return nil, invalidInput("unknown role %q", role)
	}
}

func head[T any](rows []T) []T {
	if len(rows) > activityLimit {
		return rows[:activityLimit]
	}
	return rows
}

package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/pkg/log"
	"github.com/vfg2006/storefront-dashboard-api/pkg/metrics"
)

// Nomes das operações de leitura, usados no log e na métrica de fallback
const (
	OperationDashboardStats = "dashboard_stats"
	OperationRecentOrders   = "recent_orders"
	OperationProducts       = "products"
	OperationCustomers      = "customers"
	OperationAnalytics      = "analytics"
)

// withFallback executa a leitura e, se ela falhar, registra o erro e devolve o substituto
func withFallback[T any](ctx context.Context, operation string, read func(context.Context) (T, error), fallback func() T) T {
	result, err := read(ctx)
	if err != nil {
		log.ForContext(ctx).
			WithField("operation", operation).
			WithError(err).
			Warn("dashboard: read failed, serving fallback data")
		metrics.IncFallback(operation)
		return fallback()
	}
	return result
}

// Os substitutos são recriados a cada chamada para que ninguém altere a cópia de outro

func fallbackDashboardStats() domain.DashboardStats {
	return domain.DashboardStats{
		RevenueToday:     24580,
		RevenueChange:    5.2,
		NewOrders:        345,
		OrdersChange:     15,
		ConversionRate:   4.8,
		ConversionChange: -0.2,
		ActiveCustomers:  1200,
		CustomersChange:  8,
	}
}

func fallbackRecentOrders() []domain.Order {
	order := func(id, number, customer string, total float64, status domain.OrderStatus, createdAt string) domain.Order {
		ts, _ := time.Parse(time.RFC3339, createdAt)
		return domain.Order{
			ID:          id,
			OrderNumber: number,
			Customer:    domain.NewEmbeddedReference(map[string]any{"email": customer}),
			Total:       total,
			Status:      status,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}

	return []domain.Order{
		order("1", "#ORD-1234", "A. Johnson", 450.00, domain.OrderStatusProcessing, "2024-01-01T13:02:00Z"),
		order("2", "#ORD-1235", "B. Smith", 89.99, domain.OrderStatusShipped, "2024-01-01T12:45:00Z"),
		order("3", "#ORD-1236", "C. Williams", 12.50, domain.OrderStatusDelivered, "2024-01-01T11:14:00Z"),
		order("4", "#ORD-1237", "D. Jones", 600.00, domain.OrderStatusPending, "2024-01-01T09:30:00Z"),
	}
}

func fallbackProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Premium Wireless Headphones", SKU: "HP-001", Price: 249.99, InventoryCount: 45, IsActive: true, Tags: []string{"Audio", "Wireless"}},
		{ID: "2", Name: "Smart Fitness Watch X", SKU: "SW-005", Price: 199.00, InventoryCount: 12, IsActive: true, Tags: []string{"Fitness", "Smartwatch"}},
		{ID: "3", Name: "Portable Bluetooth Speaker", SKU: "BS-010", Price: 75.00, InventoryCount: 30, IsActive: true, Tags: []string{"Audio", "Portable"}},
		{ID: "4", Name: "USB-C Fast Charger", SKU: "CH-003", Price: 29.99, InventoryCount: 0, IsActive: false, Tags: []string{"Needs AI Review"}},
	}
}

func fallbackCustomers() []domain.Customer {
	return []domain.Customer{}
}

func fallbackAnalytics() []domain.AnalyticsPoint {
	return []domain.AnalyticsPoint{}
}

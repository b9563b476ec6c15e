package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
)

// DashboardReader agrupa as leituras que alimentam o painel. Nenhuma delas devolve erro:
// em caso de falha do Payload o resultado é o substituto fixo da operação.
type DashboardReader interface {
	// ComputeDashboardStats calcula os indicadores de hoje comparados com ontem
	ComputeDashboardStats(ctx context.Context) domain.DashboardStats
	ListRecentOrders(ctx context.Context) []domain.Order
	ListProducts(ctx context.Context) []domain.Product
	ListCustomers(ctx context.Context) []domain.Customer
	// ListAnalytics repassa os pontos diários dos últimos days dias até end (zero significa hoje)
	ListAnalytics(ctx context.Context, days int, end time.Time) []domain.AnalyticsPoint
}

// DocumentReader busca documentos individuais; aqui a falha é devolvida a quem chamou
type DocumentReader interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// DashboardWriter agrupa as escritas. Falhas sempre retornam *DashboardError.
type DashboardWriter interface {
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Dashboarder é a interface completa consumida pelos handlers e pelo agendador
type Dashboarder interface {
	DashboardReader
	DocumentReader
	DashboardWriter

	// AggregateStats faz o mesmo cálculo de ComputeDashboardStats, mas devolve o erro em vez do substituto
	AggregateStats(ctx context.Context) (domain.DashboardStats, error)
}

package dashboarding

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloaddomain"
	"github.com/vfg2006/storefront-dashboard-api/internal/config"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	payloadService payload.PayloadIntegrator
	cfg            config.Dashboard
	validate       *validator.Validate
	now            func() time.Time
	generateSKU    func() (string, error)
}

func NewService(payloadService payload.PayloadIntegrator, cfg *config.Config) Dashboarder {
	return &Service{
		payloadService: payloadService,
		cfg:            cfg.Dashboard,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		now:            time.Now,
		generateSKU:    utils.GenerateSKU,
	}
}

func (s *Service) ComputeDashboardStats(ctx context.Context) domain.DashboardStats {
	return withFallback(ctx, OperationDashboardStats, s.AggregateStats, fallbackDashboardStats)
}

// AggregateStats dispara as três consultas em paralelo e só monta o resultado se todas
// responderem; qualquer falha invalida o cálculo inteiro.
func (s *Service) AggregateStats(ctx context.Context) (domain.DashboardStats, error) {
	window := domain.NewComparisonWindow(s.now())

	var (
		currentOrders []payloaddomain.RawDocument
		priorOrders   []payloaddomain.RawDocument
		customers     []domain.Customer
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		currentOrders, err = s.payloadService.GetOrdersInWindow(groupCtx, window.Current, s.cfg.StatsPageSize)
		return err
	})

	group.Go(func() error {
		var err error
		priorOrders, err = s.payloadService.GetOrdersInWindow(groupCtx, window.Prior, s.cfg.StatsPageSize)
		return err
	})

	group.Go(func() error {
		var err error
		customers, err = s.payloadService.GetCustomers(groupCtx, s.cfg.StatsPageSize)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}

	// Soma em centavos e converte uma única vez
	currentRevenue := payload.SumMinorTotals(currentOrders)
	priorRevenue := payload.SumMinorTotals(priorOrders)

	return domain.DashboardStats{
		RevenueToday:     domain.ToMajorUnits(currentRevenue),
		RevenueChange:    utils.PercentChange(float64(currentRevenue), float64(priorRevenue)),
		NewOrders:        len(currentOrders),
		OrdersChange:     utils.PercentChange(float64(len(currentOrders)), float64(len(priorOrders))),
		ConversionRate:   domain.PendingConversionRate,
		ConversionChange: domain.PendingConversionChange,
		ActiveCustomers:  len(customers),
		CustomersChange:  domain.PendingCustomersChange,
	}, nil
}

func (s *Service) ListRecentOrders(ctx context.Context) []domain.Order {
	return withFallback(ctx, OperationRecentOrders, func(ctx context.Context) ([]domain.Order, error) {
		return s.payloadService.GetRecentOrders(ctx, s.cfg.RecentOrdersLimit)
	}, fallbackRecentOrders)
}

func (s *Service) ListProducts(ctx context.Context) []domain.Product {
	return withFallback(ctx, OperationProducts, func(ctx context.Context) ([]domain.Product, error) {
		return s.payloadService.GetProducts(ctx, s.cfg.ListPageSize)
	}, fallbackProducts)
}

func (s *Service) ListCustomers(ctx context.Context) []domain.Customer {
	return withFallback(ctx, OperationCustomers, func(ctx context.Context) ([]domain.Customer, error) {
		return s.payloadService.GetCustomers(ctx, s.cfg.ListPageSize)
	}, fallbackCustomers)
}

func (s *Service) ListAnalytics(ctx context.Context, days int, end time.Time) []domain.AnalyticsPoint {
	if days <= 0 {
		days = s.cfg.AnalyticsDefaultDays
	}
	if end.IsZero() {
		end = s.now()
	}

	startDate, endDate := domain.DateRange(end, days)

	return withFallback(ctx, OperationAnalytics, func(ctx context.Context) ([]domain.AnalyticsPoint, error) {
		return s.payloadService.GetAnalytics(ctx, startDate, endDate)
	}, fallbackAnalytics)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, NewDashboardError(ErrIDRequired, apiErrors.ErrMissingRequiredData, "getOrder", "")
	}

	order, err := s.payloadService.GetOrder(ctx, id)
	if err != nil {
		return nil, fromStoreError("getOrder", id, err)
	}

	return order, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, NewDashboardError(ErrIDRequired, apiErrors.ErrMissingRequiredData, "getProduct", "")
	}

	product, err := s.payloadService.GetProduct(ctx, id)
	if err != nil {
		return nil, fromStoreError("getProduct", id, err)
	}

	return product, nil
}

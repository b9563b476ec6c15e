package payload

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloadclient"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloaddomain"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
)

const sortNewestFirst = "-created_at"

// relationDepth faz o Payload embutir um nível de relações (cliente do pedido)
const relationDepth = 1

// PayloadIntegrator expõe as consultas e escritas do painel sobre as coleções do Payload
type PayloadIntegrator interface {
	GetOrdersInWindow(ctx context.Context, window domain.TimeWindow, limit int) ([]payloaddomain.RawDocument, error)
	GetRecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetProducts(ctx context.Context, limit int) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetCustomers(ctx context.Context, limit int) ([]domain.Customer, error)
	GetAnalytics(ctx context.Context, startDate, endDate string) ([]domain.AnalyticsPoint, error)

	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type PayloadService struct {
	Client payloadclient.Client
}

func New(client payloadclient.Client) PayloadIntegrator {
	return &PayloadService{
		Client: client,
	}
}

// GetOrdersInWindow busca os pedidos com created_at dentro da janela semiaberta [Start, End)
func (s *PayloadService) GetOrdersInWindow(ctx context.Context, window domain.TimeWindow, limit int) ([]payloaddomain.RawDocument, error) {
	query := payloadclient.Query{Limit: limit}.
		With("created_at", payloaddomain.OpGreaterThanEqual, window.Start.UTC().Format(time.RFC3339))

	if !window.IsOpenEnded() {
		query = query.With("created_at", payloaddomain.OpLessThan, window.End.UTC().Format(time.RFC3339))
	}

	envelope, err := s.Client.Find(ctx, payloaddomain.OrdersCollection, query)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start": window.Start.Format(time.RFC3339),
			"end":   window.End.Format(time.RFC3339),
		}).Debug("payload: failed to fetch orders in window")
		return nil, err
	}

	return envelope.Docs, nil
}

func (s *PayloadService) GetRecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	depth := relationDepth
	envelope, err := s.Client.Find(ctx, payloaddomain.OrdersCollection, payloadclient.Query{
		Limit: limit,
		Sort:  sortNewestFirst,
		Depth: &depth,
	})
	if err != nil {
		return nil, err
	}

	return shapeAll(envelope.Docs, ShapeOrder)
}

func (s *PayloadService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := s.Client.FindByID(ctx, payloaddomain.OrdersCollection, id)
	if err != nil {
		return nil, err
	}

	order, err := ShapeOrder(raw)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *PayloadService) GetProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	envelope, err := s.Client.Find(ctx, payloaddomain.ProductsCollection, payloadclient.Query{
		Limit: limit,
		Sort:  sortNewestFirst,
	})
	if err != nil {
		return nil, err
	}

	return shapeAll(envelope.Docs, ShapeProduct)
}

func (s *PayloadService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	raw, err := s.Client.FindByID(ctx, payloaddomain.ProductsCollection, id)
	if err != nil {
		return nil, err
	}

	product, err := ShapeProduct(raw)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// GetCustomers lista os usuários com papel de cliente, mais recentes primeiro
func (s *PayloadService) GetCustomers(ctx context.Context, limit int) ([]domain.Customer, error) {
	query := payloadclient.Query{Limit: limit, Sort: sortNewestFirst}.
		With("role", payloaddomain.OpEquals, domain.CustomerRole)

	envelope, err := s.Client.Find(ctx, payloaddomain.UsersCollection, query)
	if err != nil {
		return nil, err
	}

	return shapeAll(envelope.Docs, ShapeCustomer)
}

// GetAnalytics busca os pontos diários entre startDate e endDate (inclusive), em ordem crescente
func (s *PayloadService) GetAnalytics(ctx context.Context, startDate, endDate string) ([]domain.AnalyticsPoint, error) {
	query := payloadclient.Query{Sort: "date"}.
		With("date", payloaddomain.OpGreaterThanEqual, startDate).
		With("date", payloaddomain.OpLessThanEqual, endDate)

	envelope, err := s.Client.Find(ctx, payloaddomain.AnalyticsCollection, query)
	if err != nil {
		return nil, err
	}

	return shapeAll(envelope.Docs, ShapeAnalyticsPoint)
}

func (s *PayloadService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	_, err := s.Client.Update(ctx, payloaddomain.OrdersCollection, id, map[string]any{
		"status": string(status),
	})
	return err
}

// CreateProduct envia o produto com o preço convertido para centavos
func (s *PayloadService) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	data := map[string]any{
		"name":            input.Name,
		"sku":             input.SKU,
		"price":           domain.ToMinorUnits(input.Price),
		"inventory_count": input.InventoryCount,
		"is_active":       isActive,
		"tags":            tags,
	}
	if input.Category != "" {
		data["category"] = input.Category
	}

	raw, err := s.Client.Create(ctx, payloaddomain.ProductsCollection, data)
	if err != nil {
		return nil, err
	}

	product, err := ShapeProduct(raw)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct envia apenas os campos informados; o preço só é convertido se presente
func (s *PayloadService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	data := map[string]any{}

	if patch.Name != nil {
		data["name"] = *patch.Name
	}
	if patch.SKU != nil {
		data["sku"] = *patch.SKU
	}
	if patch.Price != nil {
		data["price"] = domain.ToMinorUnits(*patch.Price)
	}
	if patch.InventoryCount != nil {
		data["inventory_count"] = *patch.InventoryCount
	}
	if patch.IsActive != nil {
		data["is_active"] = *patch.IsActive
	}
	if patch.Tags != nil {
		data["tags"] = *patch.Tags
	}
	if patch.Category != nil {
		data["category"] = *patch.Category
	}

	raw, err := s.Client.Update(ctx, payloaddomain.ProductsCollection, id, data)
	if err != nil {
		return nil, err
	}

	product, err := ShapeProduct(raw)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *PayloadService) DeleteProduct(ctx context.Context, id string) error {
	return s.Client.Delete(ctx, payloaddomain.ProductsCollection, id)
}

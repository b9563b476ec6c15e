package payload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloaddomain"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
)

func TestShapeOrder(t *testing.T) {
	tests := []struct {
		name     string
		raw      payloaddomain.RawDocument
		validate func(t *testing.T, order domain.Order)
	}{
		{
			name: "total em centavos vira unidade de exibição",
			raw:  payloaddomain.RawDocument{"id": "o1", "total": float64(45000), "status": "processing"},
			validate: func(t *testing.T, order domain.Order) {
				assert.Equal(t, 450.00, order.Total)
				assert.Equal(t, domain.OrderStatusProcessing, order.Status)
			},
		},
		{
			name: "cliente como ID recebe placeholder",
			raw:  payloaddomain.RawDocument{"id": "o2", "customer": "64f1c2", "total": float64(100)},
			validate: func(t *testing.T, order domain.Order) {
				assert.False(t, order.Customer.IsEmbedded())
				assert.Equal(t, "64f1c2", order.Customer.ID())
				assert.Equal(t, map[string]any{"email": "Customer"}, order.Customer.Display())
			},
		},
		{
			name: "cliente numérico também recebe placeholder",
			raw:  payloaddomain.RawDocument{"id": "o3", "customer": float64(17)},
			validate: func(t *testing.T, order domain.Order) {
				assert.Equal(t, "17", order.Customer.ID())
				assert.Equal(t, domain.CustomerPlaceholder(), order.Customer.Display())
			},
		},
		{
			name: "cliente nulo explícito continua nulo",
			raw:  payloaddomain.RawDocument{"id": "o6", "customer": nil},
			validate: func(t *testing.T, order domain.Order) {
				assert.True(t, order.Customer.IsZero())
				assert.Nil(t, order.Customer.Display())
				encoded, err := order.Customer.MarshalJSON()
				require.NoError(t, err)
				assert.JSONEq(t, `null`, string(encoded))
			},
		},
		{
			name: "cliente embutido passa sem alteração",
			raw: payloaddomain.RawDocument{
				"id":       "o4",
				"customer": map[string]any{"id": "u1", "email": "ana@example.com", "firstName": "Ana"},
			},
			validate: func(t *testing.T, order domain.Order) {
				assert.True(t, order.Customer.IsEmbedded())
				assert.Equal(t, map[string]any{"id": "u1", "email": "ana@example.com", "firstName": "Ana"}, order.Customer.Display())
			},
		},
		{
			name: "timestamps, pagamento e itens",
			raw: payloaddomain.RawDocument{
				"id":             "o5",
				"order_number":   "#ORD-1234",
				"total":          "8999",
				"status":         "shipped",
				"payment_status": "paid",
				"created_at":     "2024-01-01T13:02:00.000Z",
				"updated_at":     "2024-01-01T13:05:00Z",
				"items": []any{
					map[string]any{"product": "p1", "quantity": float64(2), "price": float64(2500), "total": float64(5000)},
					map[string]any{"product": map[string]any{"id": "p2", "name": "Cabo"}, "quantity": float64(1), "price": float64(3999), "total": float64(3999)},
				},
			},
			validate: func(t *testing.T, order domain.Order) {
				assert.Equal(t, "#ORD-1234", order.OrderNumber)
				assert.Equal(t, 89.99, order.Total)
				require.NotNil(t, order.PaymentStatus)
				assert.Equal(t, domain.PaymentStatusPaid, *order.PaymentStatus)
				assert.Equal(t, time.Date(2024, 1, 1, 13, 2, 0, 0, time.UTC), order.CreatedAt)
				assert.Equal(t, time.Date(2024, 1, 1, 13, 5, 0, 0, time.UTC), order.UpdatedAt)
				require.Len(t, order.Items, 2)
				assert.Equal(t, "p1", order.Items[0].Product.ID())
				assert.Equal(t, 25.0, order.Items[0].Price)
				assert.Equal(t, 50.0, order.Items[0].Total)
				assert.True(t, order.Items[1].Product.IsEmbedded())
				assert.Equal(t, 39.99, order.Items[1].Total)
			},
		},
		{
			name: "campos ausentes não quebram",
			raw:  payloaddomain.RawDocument{"id": float64(9)},
			validate: func(t *testing.T, order domain.Order) {
				assert.Equal(t, "9", order.ID)
				assert.Equal(t, 0.0, order.Total)
				assert.Nil(t, order.PaymentStatus)
				assert.True(t, order.CreatedAt.IsZero())
				assert.Empty(t, order.Items)
				assert.Equal(t, domain.CustomerPlaceholder(), order.Customer.Display())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := ShapeOrder(tt.raw)
			require.NoError(t, err)
			tt.validate(t, order)
		})
	}
}

func TestShapeOrder_MalformedItems(t *testing.T) {
	_, err := ShapeOrder(payloaddomain.RawDocument{"id": "o1", "items": []any{"not-an-object"}})

	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestShapeProduct(t *testing.T) {
	tests := []struct {
		name     string
		raw      payloaddomain.RawDocument
		validate func(t *testing.T, product domain.Product)
	}{
		{
			name: "sem inventory_count vale 0",
			raw:  payloaddomain.RawDocument{"id": "p1", "name": "Fone", "price": float64(24999)},
			validate: func(t *testing.T, product domain.Product) {
				assert.Equal(t, 0, product.InventoryCount)
				assert.Equal(t, 249.99, product.Price)
			},
		},
		{
			name: "sem is_active é ativo",
			raw:  payloaddomain.RawDocument{"id": "p2"},
			validate: func(t *testing.T, product domain.Product) {
				assert.True(t, product.IsActive)
			},
		},
		{
			name: "is_active false é respeitado",
			raw:  payloaddomain.RawDocument{"id": "p3", "is_active": false},
			validate: func(t *testing.T, product domain.Product) {
				assert.False(t, product.IsActive)
			},
		},
		{
			name: "tags ausentes viram lista vazia",
			raw:  payloaddomain.RawDocument{"id": "p4"},
			validate: func(t *testing.T, product domain.Product) {
				assert.NotNil(t, product.Tags)
				assert.Empty(t, product.Tags)
				assert.Nil(t, product.Category)
			},
		},
		{
			name: "tags no formato de array do Payload",
			raw: payloaddomain.RawDocument{
				"id":   "p5",
				"tags": []any{map[string]any{"id": "t1", "tag": "Audio"}, "Wireless", ""},
			},
			validate: func(t *testing.T, product domain.Product) {
				assert.Equal(t, []string{"Audio", "Wireless"}, product.Tags)
			},
		},
		{
			name: "categoria embutida",
			raw: payloaddomain.RawDocument{
				"id":       "p6",
				"category": map[string]any{"id": "c1", "name": "Audio"},
			},
			validate: func(t *testing.T, product domain.Product) {
				require.NotNil(t, product.Category)
				assert.True(t, product.Category.IsEmbedded())
				assert.Equal(t, "c1", product.Category.ID())
			},
		},
		{
			name: "categoria por category_id",
			raw:  payloaddomain.RawDocument{"id": "p7", "category_id": "c9", "inventory_count": float64(45)},
			validate: func(t *testing.T, product domain.Product) {
				require.NotNil(t, product.Category)
				assert.Equal(t, "c9", product.Category.ID())
				assert.Equal(t, 45, product.InventoryCount)
			},
		},
		{
			name: "estoque negativo é limitado a 0",
			raw:  payloaddomain.RawDocument{"id": "p8", "inventory_count": float64(-3)},
			validate: func(t *testing.T, product domain.Product) {
				assert.Equal(t, 0, product.InventoryCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := ShapeProduct(tt.raw)
			require.NoError(t, err)
			tt.validate(t, product)
		})
	}
}

func TestShapeCustomer(t *testing.T) {
	customer, err := ShapeCustomer(payloaddomain.RawDocument{
		"id":         "u1",
		"email":      "ana@example.com",
		"firstName":  "Ana",
		"role":       "customer",
		"created_at": "2024-02-10T08:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", customer.ID)
	assert.Equal(t, "Ana", customer.FirstName)
	assert.Empty(t, customer.LastName)
	assert.Equal(t, "customer", customer.Role)
	assert.Equal(t, time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC), customer.CreatedAt)
}

func TestShapeAnalyticsPoint(t *testing.T) {
	point, err := ShapeAnalyticsPoint(payloaddomain.RawDocument{
		"date":                "2024-01-15",
		"revenue":             1520.5,
		"orders":              float64(12),
		"visitors":            float64(300),
		"conversion_rate":     4,
		"average_order_value": 126.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", point.Date)
	assert.Equal(t, 1520.5, point.Revenue)
	assert.Equal(t, 12, point.Orders)
	assert.Equal(t, 4.0, point.ConversionRate)
	assert.Equal(t, 0, point.NewCustomers)
}

func TestSumMinorTotals(t *testing.T) {
	docs := []payloaddomain.RawDocument{
		{"total": float64(20000)},
		{"total": float64(30000)},
		{"total": nil},
		{},
	}

	sum := SumMinorTotals(docs)

	assert.Equal(t, int64(50000), sum)
	assert.Equal(t, 500.00, domain.ToMajorUnits(sum))
	assert.Equal(t, int64(0), SumMinorTotals(nil))
}

func TestSumMinorTotals_MatchesShapedTotals(t *testing.T) {
	docs := []payloaddomain.RawDocument{
		{"id": "1", "total": float64(1)},
		{"id": "2", "total": float64(8999)},
		{"id": "3", "total": float64(1250)},
		{"id": "4", "total": float64(33333)},
	}

	var shapedSum float64
	for _, doc := range docs {
		order, err := ShapeOrder(doc)
		require.NoError(t, err)
		shapedSum += order.Total
	}

	assert.InDelta(t, domain.ToMajorUnits(SumMinorTotals(docs)), shapedSum, 1e-9)
}

package payload

import (
	"math"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloaddomain"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
)

// ErrMalformedDocument indica um documento cujos campos não podem ser convertidos
var ErrMalformedDocument = errors.New("payload: malformed document")

type rawOrderItem struct {
	Product  any     `mapstructure:"product"`
	Quantity int     `mapstructure:"quantity"`
	Price    float64 `mapstructure:"price"`
	Total    float64 `mapstructure:"total"`
}

type rawOrder struct {
	ID            string         `mapstructure:"id"`
	OrderNumber   string         `mapstructure:"order_number"`
	Items         []rawOrderItem `mapstructure:"items"`
	Status        string         `mapstructure:"status"`
	PaymentStatus string         `mapstructure:"payment_status"`
	CreatedAt     string         `mapstructure:"created_at"`
	UpdatedAt     string         `mapstructure:"updated_at"`
}

type rawProduct struct {
	ID             string `mapstructure:"id"`
	Name           string `mapstructure:"name"`
	SKU            string `mapstructure:"sku"`
	InventoryCount int    `mapstructure:"inventory_count"`
	IsActive       *bool  `mapstructure:"is_active"`
	Tags           []any  `mapstructure:"tags"`
	Category       any    `mapstructure:"category"`
	CategoryID     any    `mapstructure:"category_id"`
}

type rawCustomer struct {
	ID        string `mapstructure:"id"`
	Email     string `mapstructure:"email"`
	FirstName string `mapstructure:"firstName"`
	LastName  string `mapstructure:"lastName"`
	Role      string `mapstructure:"role"`
	CreatedAt string `mapstructure:"created_at"`
}

// ShapeOrder converte um documento bruto de pedido. O total sai em unidade de exibição
// e o cliente, quando vem só como ID, recebe um placeholder de exibição.
func ShapeOrder(raw payloaddomain.RawDocument) (domain.Order, error) {
	var ro rawOrder
	if err := decode(raw, &ro); err != nil {
		return domain.Order{}, errors.Wrapf(ErrMalformedDocument, "order %s: %v", raw.String("id"), err)
	}

	order := domain.Order{
		ID:          ro.ID,
		OrderNumber: ro.OrderNumber,
		Customer:    customerReference(raw),
		Total:       domain.ToMajorUnits(raw.Int64("total")),
		Status:      domain.OrderStatus(ro.Status),
		CreatedAt:   parseTimestamp(ro.CreatedAt),
		UpdatedAt:   parseTimestamp(ro.UpdatedAt),
	}

	if ro.PaymentStatus != "" {
		paymentStatus := domain.PaymentStatus(ro.PaymentStatus)
		order.PaymentStatus = &paymentStatus
	}

	if len(ro.Items) > 0 {
		order.Items = make([]domain.OrderItem, 0, len(ro.Items))
		for _, item := range ro.Items {
			order.Items = append(order.Items, domain.OrderItem{
				Product:  domain.ReferenceFromValue(item.Product),
				Quantity: item.Quantity,
				Price:    domain.ToMajorUnits(roundMinor(item.Price)),
				Total:    domain.ToMajorUnits(roundMinor(item.Total)),
			})
		}
	}

	return order, nil
}

// ShapeProduct converte um documento bruto de produto: preço em unidade de exibição,
// estoque 0 quando ausente, ativo quando is_active não foi informado e tags nunca nulas.
func ShapeProduct(raw payloaddomain.RawDocument) (domain.Product, error) {
	var rp rawProduct
	if err := decode(raw, &rp); err != nil {
		return domain.Product{}, errors.Wrapf(ErrMalformedDocument, "product %s: %v", raw.String("id"), err)
	}

	product := domain.Product{
		ID:             rp.ID,
		Name:           rp.Name,
		SKU:            rp.SKU,
		Price:          domain.ToMajorUnits(raw.Int64("price")),
		InventoryCount: max(rp.InventoryCount, 0),
		IsActive:       rp.IsActive == nil || *rp.IsActive,
		Tags:           shapeTags(rp.Tags),
	}

	category := rp.Category
	if category == nil {
		category = rp.CategoryID
	}
	if ref := domain.ReferenceFromValue(category); !ref.IsZero() {
		product.Category = &ref
	}

	return product, nil
}

func ShapeCustomer(raw payloaddomain.RawDocument) (domain.Customer, error) {
	var rc rawCustomer
	if err := decode(raw, &rc); err != nil {
		return domain.Customer{}, errors.Wrapf(ErrMalformedDocument, "user %s: %v", raw.String("id"), err)
	}

	return domain.Customer{
		ID:        rc.ID,
		Email:     rc.Email,
		FirstName: rc.FirstName,
		LastName:  rc.LastName,
		Role:      rc.Role,
		CreatedAt: parseTimestamp(rc.CreatedAt),
	}, nil
}

func ShapeAnalyticsPoint(raw payloaddomain.RawDocument) (domain.AnalyticsPoint, error) {
	var point domain.AnalyticsPoint
	if err := decode(raw, &point); err != nil {
		return domain.AnalyticsPoint{}, errors.Wrapf(ErrMalformedDocument, "analytics %s: %v", raw.String("id"), err)
	}
	return point, nil
}

// SumMinorTotals soma o campo total em centavos, sem converter cada parcela
func SumMinorTotals(docs []payloaddomain.RawDocument) int64 {
	var sum int64
	for _, doc := range docs {
		sum += doc.Int64("total")
	}
	return sum
}

// shapeAll é tudo ou nada: um documento inválido invalida a listagem inteira
func shapeAll[T any](docs []payloaddomain.RawDocument, shape func(payloaddomain.RawDocument) (T, error)) ([]T, error) {
	shaped := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := shape(doc)
		if err != nil {
			return nil, err
		}
		shaped = append(shaped, item)
	}
	return shaped, nil
}

// customerReference mantém um cliente nulo explícito como nulo; ausente ou só ID recebe o placeholder
func customerReference(raw payloaddomain.RawDocument) domain.Reference {
	if _, present := raw["customer"]; present && !raw.Has("customer") {
		return domain.Reference{}
	}

	ref := domain.ReferenceFromValue(raw["customer"])
	if ref.IsEmbedded() {
		return ref
	}
	return ref.WithPlaceholder(domain.CustomerPlaceholder())
}

// shapeTags aceita tanto ["a","b"] quanto o formato de array do Payload [{"tag":"a"}]
func shapeTags(values []any) []string {
	tags := make([]string, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if v != "" {
				tags = append(tags, v)
			}
		case map[string]any:
			doc := payloaddomain.RawDocument(v)
			for _, key := range []string{"tag", "name", "label", "value"} {
				if s := doc.String(key); s != "" {
					tags = append(tags, s)
					break
				}
			}
		}
	}
	return tags
}

func roundMinor(v float64) int64 {
	return int64(math.Round(v))
}

func parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}

func decode(raw payloaddomain.RawDocument, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(raw))
}

package payloaddomain

import (
	"math"
	"strconv"
	"strings"
)

// Coleções consultadas no Payload
const (
	OrdersCollection    = "orders"
	ProductsCollection  = "products"
	UsersCollection     = "users"
	AnalyticsCollection = "analytics"
)

// Operadores aceitos em where[campo][operador]
const (
	OpEquals           = "equals"
	OpGreaterThanEqual = "greater_than_equal"
	OpLessThan         = "less_than"
	OpLessThanEqual    = "less_than_equal"
)

// RawDocument é um documento do Payload ainda sem tipo
type RawDocument map[string]any

// Envelope é a resposta paginada de uma coleção
type Envelope struct {
	Docs        []RawDocument `json:"docs"`
	TotalDocs   int           `json:"totalDocs"`
	Limit       int           `json:"limit"`
	Page        int           `json:"page"`
	HasNextPage bool          `json:"hasNextPage"`
}

// Has indica se o campo está presente e não é nulo
func (d RawDocument) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

func (d RawDocument) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Int64 lê um campo inteiro (por exemplo um valor monetário em centavos).
// Campo ausente, nulo ou ilegível vale 0.
func (d RawDocument) Int64(key string) int64 {
	switch v := d[key].(type) {
	case float64:
		return int64(math.Round(v))
	case float32:
		return int64(math.Round(float64(v)))
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(math.Round(f))
		}
		return 0
	default:
		return 0
	}
}

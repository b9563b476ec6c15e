package domain

// Ainda não existe coleta de visitantes nem histórico de crescimento de clientes,
// então estes valores são fixos e não calculados.
const (
	PendingConversionRate   = 4.8
	PendingConversionChange = -0.2
	PendingCustomersChange  = 8.0
)

// DashboardStats agrupa os indicadores do painel. Campos *Change são percentuais
// com sinal e valem 0 quando o período anterior é zero.
type DashboardStats struct {
	RevenueToday     float64 `json:"revenue_today"`
	RevenueChange    float64 `json:"revenue_change"`
	NewOrders        int     `json:"new_orders"`
	OrdersChange     float64 `json:"orders_change"`
	ConversionRate   float64 `json:"conversion_rate"`
	ConversionChange float64 `json:"conversion_change"`
	ActiveCustomers  int     `json:"active_customers"`
	CustomersChange  float64 `json:"customers_change"`
}

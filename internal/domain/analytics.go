package domain

// AnalyticsPoint é repassado do Payload sem nenhum cálculo
type AnalyticsPoint struct {
	Date               string  `json:"date" mapstructure:"date"`
	Revenue            float64 `json:"revenue" mapstructure:"revenue"`
	Orders             int     `json:"orders" mapstructure:"orders"`
	Visitors           int     `json:"visitors" mapstructure:"visitors"`
	ConversionRate     float64 `json:"conversion_rate" mapstructure:"conversion_rate"`
	AverageOrderValue  float64 `json:"average_order_value" mapstructure:"average_order_value"`
	NewCustomers       int     `json:"new_customers" mapstructure:"new_customers"`
	ReturningCustomers int     `json:"returning_customers" mapstructure:"returning_customers"`
}

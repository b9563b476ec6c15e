package domain

import (
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

func (s OrderStatus) IsValid() bool {
	return slices.Contains(OrderStatuses, s)
}

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// PlaceholderCustomerLabel é exibido quando o pedido traz apenas o ID do cliente
const PlaceholderCustomerLabel = "Customer"

// CustomerPlaceholder é o valor de exibição de um cliente não expandido
func CustomerPlaceholder() map[string]any {
	return map[string]any{"email": PlaceholderCustomerLabel}
}

type OrderItem struct {
	Product  Reference `json:"product"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Total    float64   `json:"total"`
}

// Order é o pedido já normalizado: Total está sempre em unidade de exibição
type Order struct {
	ID            string         `json:"id"`
	OrderNumber   string         `json:"order_number"`
	Customer      Reference      `json:"customer"`
	Items         []OrderItem    `json:"items,omitempty"`
	Total         float64        `json:"total"`
	Status        OrderStatus    `json:"status"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type UpdateOrderStatusRequest struct {
	ID     string      `validate:"required"`
	Status OrderStatus `validate:"required,oneof=pending processing shipped delivered cancelled refunded"`
}

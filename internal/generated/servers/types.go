// Package servers holds the HTTP contract of the service: request and response
// types, the ServerInterface the adapter implements and the route registration.
// It mirrors openapi.yml, which is embedded and served as-is.
package servers

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Defines values for OrderStatus.
const (
	CANCELLED  OrderStatus = "CANCELLED"
	COMPLETED  OrderStatus = "COMPLETED"
	PAID       OrderStatus = "PAID"
	PLACED     OrderStatus = "PLACED"
	PROCESSING OrderStatus = "PROCESSING"
	SHIPPED    OrderStatus = "SHIPPED"
)

// CreateOrderItem defines model for CreateOrderItem.
type CreateOrderItem struct {
	Price     *decimal.Decimal `json:"price" validate:"required"`
	ProductId string           `json:"productId" validate:"required"`
	Quantity  *int             `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest defines model for CreateOrderRequest.
type CreateOrderRequest struct {
	AccountId       string            `json:"accountId" validate:"required"`
	Items           []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   *string           `json:"paymentMethod,omitempty"`
	ShippingAddress string            `json:"shippingAddress" validate:"required"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Price     decimal.Decimal `json:"price"`
	ProductId string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order defines model for Order.
type Order struct {
	AccountId       string          `json:"accountId"`
	CreatedAt       time.Time       `json:"createdAt"`
	Id              int64           `json:"id"`
	Items           []OrderItem     `json:"items"`
	PaymentId       *string         `json:"paymentId,omitempty"`
	ShippingAddress string          `json:"shippingAddress"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Error defines model for Error.
type Error struct {
	Code      int       `json:"code"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// GetAccountOrdersParams defines parameters for GetAccountOrders.
type GetAccountOrdersParams struct {
	// Status Only return orders in this status
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// UpdateOrderStatusParams defines parameters for UpdateOrderStatus.
type UpdateOrderStatusParams struct {
	Status OrderStatus `form:"status" json:"status"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = CreateOrderRequest

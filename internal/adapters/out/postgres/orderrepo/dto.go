// Package orderrepo provides the GORM implementation of the order repository together
// with the data transfer objects and mapping functions it persists.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps come from the domain clock, so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	AccountID       string          `gorm:"type:varchar(255);not null;index:idx_orders_account_status,priority:1"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	PaymentID       *string         `gorm:"type:varchar(255)"`
	Status          string          `gorm:"type:varchar(32);not null;index:idx_orders_account_status,priority:2"`
	CreatedAt       time.Time       `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row. OrderID is the lookup key back to the
// owning order; Position keeps the creation order of items.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	Position  int             `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(19,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// A zero ID lets the database generate one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for i, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID(),
			Position:  i,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Subtotal:  item.Subtotal().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		AccountID:       aggregate.AccountID(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		ShippingAddress: aggregate.ShippingAddress(),
		PaymentID:       aggregate.PaymentID(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// Items are expected in Position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.AccountID,
		items,
		total,
		dto.ShippingAddress,
		dto.PaymentID,
		status,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(dto.ProductID, dto.Quantity, unitPrice, subtotal), nil
}

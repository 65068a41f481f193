package http

import (
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"
)

func toCreateOrderLines(items []servers.CreateOrderItem) []commands.CreateOrderLine {
	lines := make([]commands.CreateOrderLine, 0, len(items))
	for _, item := range items {
		line := commands.CreateOrderLine{ProductID: item.ProductId}
		if item.Quantity != nil {
			line.Quantity = *item.Quantity
		}
		if item.Price != nil {
			line.UnitPrice = *item.Price
		}
		lines = append(lines, line)
	}
	return lines
}

func toOrderResponse(o *order.Order) servers.Order {
	items := o.Items()
	respItems := make([]servers.OrderItem, len(items))
	for i, item := range items {
		respItems[i] = servers.OrderItem{
			ProductId: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.UnitPrice().Amount(),
			Subtotal:  item.Subtotal().Amount(),
		}
	}

	return servers.Order{
		Id:              o.ID(),
		AccountId:       o.AccountID(),
		Items:           respItems,
		TotalAmount:     o.TotalAmount().Amount(),
		ShippingAddress: o.ShippingAddress(),
		PaymentId:       o.PaymentID(),
		Status:          servers.OrderStatus(o.Status().String()),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func fromStatusParam(status servers.OrderStatus) (order.Status, error) {
	return order.ParseStatus(string(status))
}

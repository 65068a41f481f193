// Package usecases exposes the operations of the order service as one entry point.
// Each operation builds and validates a command or query and hands it to its handler.
package usecases

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	cancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	updateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	getAccountOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAccountOrdersQuery) ([]*order.Order, error)
	}
)

// OrderService creates, reads, cancels and re-statuses orders.
type OrderService struct {
	createOrder       createOrderHandler
	cancelOrder       cancelOrderHandler
	updateOrderStatus updateOrderStatusHandler
	getOrder          getOrderHandler
	getAccountOrders  getAccountOrdersHandler
}

// NewOrderService assembles the service from its handlers.
func NewOrderService(
	createOrder createOrderHandler,
	cancelOrder cancelOrderHandler,
	updateOrderStatus updateOrderStatusHandler,
	getOrder getOrderHandler,
	getAccountOrders getAccountOrdersHandler,
) *OrderService {
	return &OrderService{
		createOrder:       createOrder,
		cancelOrder:       cancelOrder,
		updateOrderStatus: updateOrderStatus,
		getOrder:          getOrder,
		getAccountOrders:  getAccountOrders,
	}
}

// CreateOrder places a new order and returns it with its assigned id,
// status PLACED and the computed total.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	accountID string,
	lines []commands.CreateOrderLine,
	shippingAddress string,
	paymentMethod string,
) (*order.Order, error) {
	cmd, err := commands.NewCreateOrderCommand(accountID, lines, shippingAddress, paymentMethod)
	if err != nil {
		return nil, err
	}
	return s.createOrder.Handle(ctx, cmd)
}

// GetOrderByID returns the order or *errs.ObjectNotFoundError.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID int64) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}
	return s.getOrder.Handle(ctx, query)
}

// GetOrdersByAccountID lists an account's orders. A nil status returns all of them.
func (s *OrderService) GetOrdersByAccountID(
	ctx context.Context,
	accountID string,
	status *order.Status,
) ([]*order.Order, error) {
	query, err := queries.NewGetAccountOrdersQuery(accountID, status)
	if err != nil {
		return nil, err
	}
	return s.getAccountOrders.Handle(ctx, query)
}

// CancelOrder cancels the order unless it is SHIPPED or COMPLETED.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return nil, err
	}
	return s.cancelOrder.Handle(ctx, cmd)
}

// UpdateOrderStatus sets the order's status to status.
func (s *OrderService) UpdateOrderStatus(
	ctx context.Context,
	orderID int64,
	status order.Status,
) (*order.Order, error) {
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return nil, err
	}
	return s.updateOrderStatus.Handle(ctx, cmd)
}

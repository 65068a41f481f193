package http

import (
	"context"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// OrderService is the application entry point the HTTP server drives.
type OrderService interface {
	CreateOrder(
		ctx context.Context,
		accountID string,
		lines []commands.CreateOrderLine,
		shippingAddress string,
		paymentMethod string,
	) (*order.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (*order.Order, error)
	GetOrdersByAccountID(ctx context.Context, accountID string, status *order.Status) ([]*order.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status order.Status) (*order.Order, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// Errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	orders OrderService
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server on top of the order service.
func NewServer(orders OrderService) *Server {
	return &Server{orders: orders}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	var paymentMethod string
	if req.PaymentMethod != nil {
		paymentMethod = *req.PaymentMethod
	}

	placed, err := s.orders.CreateOrder(
		ctx.Request().Context(),
		req.AccountId,
		toCreateOrderLines(req.Items),
		req.ShippingAddress,
		paymentMethod,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	o, err := s.orders.GetOrderByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetAccountOrders handles GET /api/v1/orders/account/{accountId}.
func (s *Server) GetAccountOrders(ctx echo.Context, accountId string, params servers.GetAccountOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := fromStatusParam(*params.Status)
		if err != nil {
			return err
		}
		status = &parsed
	}

	orders, err := s.orders.GetOrdersByAccountID(ctx.Request().Context(), accountId, status)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	cancelled, err := s.orders.CancelOrder(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(cancelled))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{id}/status?status=.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64, params servers.UpdateOrderStatusParams) error {
	status, err := fromStatusParam(params.Status)
	if err != nil {
		return err
	}

	updated, err := s.orders.UpdateOrderStatus(ctx.Request().Context(), id, status)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// GetAccountOrdersQueryHandler lists the orders of one account.
type GetAccountOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetAccountOrdersQueryHandler creates a handler reading through reader.
func NewGetAccountOrdersQueryHandler(reader OrderReader) GetAccountOrdersQueryHandler {
	return GetAccountOrdersQueryHandler{reader: reader}
}

// Handle returns the account's orders in id order. An account without orders
// yields an empty, non-nil slice.
func (h GetAccountOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAccountOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetByAccount(ctx, query.AccountID(), query.Status())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}

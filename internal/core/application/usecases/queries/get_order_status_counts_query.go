package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
		"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
	)
)

// GetOrderStatusCountsQuery counts stored orders per status.
// This is a parameterless query; every known status is reported, including those
// with no orders.
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusCountsQuery creates the query.
func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// GetOrderStatusCountsQueryResponse is the number of orders currently in Status.
type GetOrderStatusCountsQueryResponse struct {
	Status order.Status
	Count  int64
}

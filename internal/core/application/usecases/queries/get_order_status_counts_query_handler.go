package queries

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatusCountsQueryHandler aggregates order counts with a single SQL query.
//
// Example:
//
//	handler := NewGetOrderStatusCountsQueryHandler(db)
//	counts, err := handler.Handle(ctx, NewGetOrderStatusCountsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, c := range counts {
//	    fmt.Printf("%s: %d\n", c.Status, c.Count)
//	}
type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusCountsQueryHandler creates the handler over a GORM connection.
func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

// Handle returns one entry per known status in lifecycle order.
func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) ([]GetOrderStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counted := make(map[order.Status]int64)
	for rows.Next() {
		var name string
		var count int64
		if err = rows.Scan(&name, &count); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(name)
		if parseErr != nil {
			return nil, fmt.Errorf("stored order status %q: %w", name, parseErr)
		}
		counted[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	statuses := order.Statuses()
	result := make([]GetOrderStatusCountsQueryResponse, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, GetOrderStatusCountsQueryResponse{
			Status: status,
			Count:  counted[status],
		})
	}
	return result, nil
}

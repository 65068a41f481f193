package queries

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetAccountOrdersQueryIsNotConstructed = errors.New(
		"GetAccountOrdersQuery must be created via NewGetAccountOrdersQuery constructor",
	)
)

// GetAccountOrdersQuery retrieves every order of an account, optionally narrowed
// to a single status.
//
// Example:
//
//	shipped := order.Shipped
//	query, err := NewGetAccountOrdersQuery("acc-123", &shipped)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetAccountOrdersQuery struct {
	accountID string
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewGetAccountOrdersQuery creates the query. A nil status means all statuses.
func NewGetAccountOrdersQuery(accountID string, status *order.Status) (GetAccountOrdersQuery, error) {
	var errList []error
	if strings.TrimSpace(accountID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("accountId"))
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return GetAccountOrdersQuery{}, err
	}

	q := GetAccountOrdersQuery{accountID: accountID, guard: guard.NewConstructorGuard()}
	if status != nil {
		s := *status
		q.status = &s
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountOrdersQueryIsNotConstructed)
}

func (q GetAccountOrdersQuery) AccountID() string {
	return q.accountID
}

// Status returns the status filter, or nil when all statuses are requested.
func (q GetAccountOrdersQuery) Status() *order.Status {
	return q.status
}

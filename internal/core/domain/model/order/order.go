package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the ordering domain: an account's purchase together
// with its line items, total amount and lifecycle status.
//
// Order follows these invariants:
//   - The id is zero until the store assigns it and never changes afterwards
//   - Items and totalAmount are fixed at creation; totalAmount is the sum of item subtotals
//   - A status change touches only status and updatedAt
//   - createdAt never changes
type Order struct {
	id              int64
	accountID       string
	items           []Item
	totalAmount     kernel.Money
	shippingAddress string
	paymentID       *string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a PLACED order whose total is computed from items.
//
// Parameters:
//   - accountID: owner of the order (required)
//   - items: line items, at least one
//   - shippingAddress: delivery address (required)
//   - paymentID: optional payment reference; nil or blank means none
//   - now: creation instant, used for both createdAt and updatedAt
//
// Example:
//
//	price, _ := kernel.MoneyFromString("29.99")
//	item, _ := order.NewItem("prod-1", 2, price)
//	o, err := order.NewOrder("acc-123", []order.Item{item}, "1 Main St", nil, clock.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	accountID string,
	items []Item,
	shippingAddress string,
	paymentID *string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Placed,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setAccountID(accountID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	o.paymentID = normalizePaymentID(paymentID)
	o.totalAmount = ComputeTotal(o.items)

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is.
func RestoreOrder(
	id int64,
	accountID string,
	items []Item,
	totalAmount kernel.Money,
	shippingAddress string,
	paymentID *string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount: totalAmount,
		paymentID:   normalizePaymentID(paymentID),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.AssignID(id),
		o.setAccountID(accountID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity. Orders without an id are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.HasID() && o.id == other.id
}

// AssignID records the identifier the store generated. It may be called once.
func (o *Order) AssignID(id int64) error {
	if o.HasID() {
		return errs.NewIllegalStateError("assign order id", fmt.Sprintf("id %d already assigned", o.id))
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "unbounded")
	}
	o.id = id
	return nil
}

// HasID reports whether the store has assigned an id.
func (o *Order) HasID() bool {
	return o.id != 0
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) AccountID() string {
	return o.accountID
}

// Items returns a copy of the line items in creation order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// PaymentID returns the payment reference, or nil when none was given.
func (o *Order) PaymentID() *string {
	if o.paymentID == nil {
		return nil
	}
	id := *o.paymentID
	return &id
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Cancel moves the order to CANCELLED.
//
// Returns an *errs.IllegalStateError carrying the current status when the order is
// SHIPPED or COMPLETED; the order is left untouched in that case.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// UpdateStatus sets the status to target regardless of the current status.
// Only an unknown target is rejected.
func (o *Order) UpdateStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return errs.NewValueIsRequiredError("accountId")
	}
	o.accountID = accountID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must contain at least one item"))
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func normalizePaymentID(paymentID *string) *string {
	if paymentID == nil || strings.TrimSpace(*paymentID) == "" {
		return nil
	}
	id := *paymentID
	return &id
}

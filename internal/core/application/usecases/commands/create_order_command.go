package commands

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderLine is one requested line item as received from a client.
type CreateOrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("acc-123", []CreateOrderLine{
//	    {ProductID: "prod-1", Quantity: 2, UnitPrice: decimal.RequireFromString("29.99")},
//	}, "123 Main St", "pmt-456")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	accountID       string
	items           []order.Item
	shippingAddress string
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request: accountID and shippingAddress must not be
// blank, lines must not be empty and every line must be a valid item.
// All problems are reported together.
func NewCreateOrderCommand(
	accountID string,
	lines []CreateOrderLine,
	shippingAddress string,
	paymentMethod string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentMethod: strings.TrimSpace(paymentMethod),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setItems(lines),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) AccountID() string {
	return c.accountID
}

// Items returns the validated line items in request order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// PaymentMethod returns the payment reference, or nil when the client sent none.
func (c CreateOrderCommand) PaymentMethod() *string {
	if c.paymentMethod == "" {
		return nil
	}
	pm := c.paymentMethod
	return &pm
}

func (c *CreateOrderCommand) setAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return errs.NewValueIsRequiredError("accountId")
	}
	c.accountID = accountID
	return nil
}

func (c *CreateOrderCommand) setItems(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must contain at least one item"))
	}

	items := make([]order.Item, 0, len(lines))
	var errList []error
	for i, line := range lines {
		unitPrice, err := kernel.NewMoney(line.UnitPrice)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}

		item, err := order.NewItem(line.ProductID, line.Quantity, unitPrice)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	c.shippingAddress = address
	return nil
}

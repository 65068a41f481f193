package order

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// MinItemQuantity is the smallest quantity a line item may carry.
const MinItemQuantity = 1

// Item is an order line: a product, how many of it and at what unit price.
// Items are values; the aggregate hands out copies.
type Item struct {
	productID string
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money
}

// NewItem validates the line and derives its subtotal.
func NewItem(productID string, quantity int, unitPrice kernel.Money) (Item, error) {
	var errList []error
	if strings.TrimSpace(productID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	if quantity < MinItemQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  Subtotal(&quantity, &unitPrice),
	}, nil
}

// RestoreItem rebuilds a persisted line, keeping the stored subtotal.
func RestoreItem(productID string, quantity int, unitPrice, subtotal kernel.Money) Item {
	return Item{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  subtotal,
	}
}

func (i Item) ProductID() string {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}

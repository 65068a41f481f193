package order

import "ordering/internal/core/domain/model/kernel"

// Subtotal returns unitPrice * quantity, or zero when either value is absent.
func Subtotal(quantity *int, unitPrice *kernel.Money) kernel.Money {
	if quantity == nil || unitPrice == nil {
		return kernel.ZeroMoney()
	}
	return unitPrice.Times(*quantity)
}

// ComputeTotal sums unitPrice * quantity over items, starting from zero.
func ComputeTotal(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.UnitPrice().Times(item.Quantity()))
	}
	return total
}

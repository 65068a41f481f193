// Package order provides the Order aggregate and the lifecycle rules that govern it.
//
// The package includes:
//   - Order: the aggregate root owning its line items, total and status
//   - Item: an immutable line item (product, quantity, unit price, subtotal)
//   - Status: the lifecycle states and their transition checks
//   - ComputeTotal and Subtotal: pure amount calculations
//
// Key business rules:
//   - Orders are created in PLACED status with a total equal to the sum of item subtotals
//   - Items and total are set once at creation and never recomputed
//   - Cancellation is rejected for SHIPPED and COMPLETED orders
//   - An explicit status update may move an order from any status to any other status
//   - Only status and updatedAt change when the status changes
//
// Items belong exclusively to their order. The store keeps an order id on each
// item row for lookups, but nothing in this package navigates from an item to its order.
package order

// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - Money: a non-negative monetary amount backed by exact decimal arithmetic
//   - Clock: the time source aggregates use for their timestamps
//
// Money never uses binary floating point; every operation is carried out on
// shopspring/decimal values so totals do not drift when prices like 29.99 are summed.
package kernel

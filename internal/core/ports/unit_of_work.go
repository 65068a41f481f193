package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per write operation.
// Instances are not shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one order write.
// Callers drive Begin, Commit and Rollback themselves.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the changes
	// of every aggregate saved through it.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction,
	// or to the plain connection when no transaction is active.
	OrderRepository() OrderRepository
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Aggregates passed to its
// repositories are tracked, and their domain events are published once Commit
// succeeds. Rollback drops them.
type UnitOfWork interface {
	// Begin starts the transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes the changes visible. Returns an error without an active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the changes. Returns an error without an active transaction.
	Rollback(ctx context.Context) error

	CatalogRepository() CatalogRepository

	OrderRepository() OrderRepository

	RatingRepository() RatingRepository
}

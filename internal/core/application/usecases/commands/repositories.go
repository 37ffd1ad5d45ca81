// Package commands contains the use cases that change state: catalog
// registration, order placement, delivery scheduling and rating.
// Every handler validates its command, runs inside a unit of work and commits
// only when every step succeeded.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// CatalogUoW is used by commands that only touch the catalog.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW is used by commands that only touch the order book.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RatingUoW is used by commands that only append ratings.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}
)

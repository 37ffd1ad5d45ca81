package memory

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/ddd"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store: f.store,
	}
}

// UnitOfWork holds the store's write lock between Begin and Commit or Rollback.
// Repositories obtained before Begin work directly against the store, one
// locked operation at a time.
type UnitOfWork struct {
	store             *Store
	tx                *state
	trackedAggregates []ddd.AggregateRoot
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.store.mu.Lock()
	uow.tx = uow.store.state.clone()
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.store.state = uow.tx
	uow.tx = nil
	uow.store.mu.Unlock()

	tracked := uow.trackedAggregates
	uow.trackedAggregates = nil
	uow.store.publish(ctx, tracked)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	uow.trackedAggregates = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return newCatalogRepository(uow)
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return newOrderRepository(uow)
}

func (uow *UnitOfWork) RatingRepository() ports.RatingRepository {
	return newRatingRepository(uow)
}

func (uow *UnitOfWork) read(ctx context.Context, fn func(st *state) error) error {
	if uow.tx == nil {
		return uow.store.read(ctx, fn)
	}
	return fn(uow.tx)
}

func (uow *UnitOfWork) write(ctx context.Context, fn func(st *state) error) error {
	if uow.tx == nil {
		return uow.store.write(ctx, fn)
	}
	return fn(uow.tx)
}

// track defers event publication to Commit. Outside a transaction the write
// has already been applied, so events go out at once.
func (uow *UnitOfWork) track(ctx context.Context, aggregate ddd.AggregateRoot) {
	if uow.tx == nil {
		uow.store.publish(ctx, []ddd.AggregateRoot{aggregate})
		return
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *UnitOfWork) nextOrderID() order.ID {
	return uow.store.nextOrderID()
}

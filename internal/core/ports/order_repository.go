package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository is the order book.
type OrderRepository interface {
	// NextID reserves the next order id. Ids are never handed out twice, even
	// when the reserving unit of work rolls back.
	NextID(ctx context.Context) (order.ID, error)

	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetAllPending returns pending orders in id order. Inside a unit of work the
	// returned orders are reserved for it until commit or rollback.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	CountPending(ctx context.Context) (int, error)

	// CountByRestaurant returns the number of orders per restaurant name,
	// regardless of status.
	CountByRestaurant(ctx context.Context) (map[string]int, error)
}

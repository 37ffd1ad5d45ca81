package ports

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// RankingCache keeps the last computed restaurant ranking. Every Invalidate
// starts a new generation, and a ranking computed in an older generation is
// never stored.
type RankingCache interface {
	// Get reports ok == false on a miss. generation is returned on a miss too;
	// read it before the ratings being ranked and hand it back to Set.
	Get(ctx context.Context) (ranking []services.RestaurantRating, generation int64, ok bool, err error)

	// Set stores ranking unless the cache was invalidated after generation was
	// read, in which case it does nothing.
	Set(ctx context.Context, generation int64, ranking []services.RestaurantRating) error

	Invalidate(ctx context.Context) error
}

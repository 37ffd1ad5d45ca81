package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory"
	rediscache "fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type ratingUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f ratingUoWFactory) Create() commands.RatingUoW {
	return f.factory.Create()
}

// ratingAddedDuringRead runs during once, after the stored ratings were read
// and before they are returned.
type ratingAddedDuringRead struct {
	ports.RatingRepository
	during func(ctx context.Context)
}

func (r *ratingAddedDuringRead) GetAll(ctx context.Context) ([]*rating.Rating, error) {
	ratings, err := r.RatingRepository.GetAll(ctx)
	if r.during != nil {
		during := r.during
		r.during = nil
		during(ctx)
	}
	return ratings, err
}

func TestGetRankedRestaurantsQueryHandler_Handle(t *testing.T) {
	t.Run("should rank by average then name", func(t *testing.T) {
		f := newFixture(t)
		f.rating(t, "A", 5, 3)
		f.rating(t, "B", 2)
		f.rating(t, "C", 5)
		f.rating(t, "D", 4)

		h := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, nil, discardLogger())
		ranking, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())

		require.NoError(t, err)
		assert.Equal(t, []queries.GetRankedRestaurantsQueryResponse{
			{Restaurant: "C", Average: 5, Count: 1},
			{Restaurant: "A", Average: 4, Count: 2},
			{Restaurant: "D", Average: 4, Count: 1},
			{Restaurant: "B", Average: 2, Count: 1},
		}, ranking)
	})

	t.Run("should serve from cache on hit", func(t *testing.T) {
		f := newFixture(t)
		cache := new(MockRankingCache)
		cache.On("Get", mock.Anything).Return([]services.RestaurantRating{
			{Restaurant: "Cached", Average: 3, Count: 1},
		}, int64(4), true, nil).Once()

		h := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, cache, discardLogger())
		ranking, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())

		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, "Cached", ranking[0].Restaurant)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should compute and store on miss", func(t *testing.T) {
		f := newFixture(t)
		f.rating(t, "A", 4)
		cache := new(MockRankingCache)
		cache.On("Get", mock.Anything).Return(nil, int64(7), false, nil).Once()
		cache.On("Set", mock.Anything, int64(7), []services.RestaurantRating{
			{Restaurant: "A", Average: 4, Count: 1},
		}).Return(nil).Once()

		h := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, cache, discardLogger())
		ranking, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())

		require.NoError(t, err)
		assert.Len(t, ranking, 1)
		cache.AssertExpectations(t)
	})

	t.Run("should fall back to storage when cache fails", func(t *testing.T) {
		f := newFixture(t)
		f.rating(t, "A", 4)
		cache := new(MockRankingCache)
		cache.On("Get", mock.Anything).Return(nil, int64(0), false, errors.New("redis down")).Once()

		h := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, cache, discardLogger())
		ranking, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())

		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, "A", ranking[0].Restaurant)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should keep serving when the cache write fails", func(t *testing.T) {
		f := newFixture(t)
		f.rating(t, "A", 4)
		cache := new(MockRankingCache)
		cache.On("Get", mock.Anything).Return(nil, int64(0), false, nil).Once()
		cache.On("Set", mock.Anything, int64(0), mock.Anything).Return(errors.New("redis down")).Once()

		h := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, cache, discardLogger())
		ranking, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())

		require.NoError(t, err)
		require.Len(t, ranking, 1)
		cache.AssertExpectations(t)
	})

	t.Run("should not cache a ranking that misses a rating committed during the read", func(t *testing.T) {
		f := newFixture(t)
		f.rating(t, "A", 1)

		server := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		cache := rediscache.NewRankingCache(client, "", time.Minute)

		addRating := commands.NewAddRatingCommandHandler(ratingUoWFactory{factory: f.uowFactory}, cache, discardLogger())
		repo := &ratingAddedDuringRead{
			RatingRepository: f.ratingRepo,
			during: func(ctx context.Context) {
				cmd, err := commands.NewAddRatingCommand("B", 5)
				require.NoError(t, err)
				accepted, err := addRating.Handle(ctx, cmd)
				require.NoError(t, err)
				require.True(t, accepted)
			},
		}
		h := queries.NewGetRankedRestaurantsQueryHandler(repo, cache, discardLogger())

		first, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())
		require.NoError(t, err)
		assert.Equal(t, []queries.GetRankedRestaurantsQueryResponse{
			{Restaurant: "A", Average: 1, Count: 1},
		}, first)

		second, err := h.Handle(t.Context(), queries.NewGetRankedRestaurantsQuery())
		require.NoError(t, err)
		assert.Equal(t, []queries.GetRankedRestaurantsQueryResponse{
			{Restaurant: "B", Average: 5, Count: 1},
			{Restaurant: "A", Average: 1, Count: 1},
		}, second)
	})
}

func TestGetBestRestaurantQueryHandler_Handle(t *testing.T) {
	t.Run("should report none without ratings", func(t *testing.T) {
		f := newFixture(t)
		ranking := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, nil, discardLogger())
		h := queries.NewGetBestRestaurantQueryHandler(ranking)

		best, err := h.Handle(t.Context(), queries.NewGetBestRestaurantQuery())

		require.NoError(t, err)
		assert.False(t, best.Found)
		assert.Empty(t, best.Restaurant)
	})

	t.Run("should return the top restaurant", func(t *testing.T) {
		f := newFixture(t)
		f.rating(t, "A", 5, 3)
		f.rating(t, "C", 5)
		ranking := queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, nil, discardLogger())
		h := queries.NewGetBestRestaurantQueryHandler(ranking)

		best, err := h.Handle(t.Context(), queries.NewGetBestRestaurantQuery())

		require.NoError(t, err)
		assert.True(t, best.Found)
		assert.Equal(t, "C", best.Restaurant)
		assert.InDelta(t, 5.0, best.Average, 1e-9)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		f := newFixture(t)
		h := queries.NewGetBestRestaurantQueryHandler(
			queries.NewGetRankedRestaurantsQueryHandler(f.ratingRepo, nil, discardLogger()),
		)

		_, err := h.Handle(t.Context(), queries.GetBestRestaurantQuery{})

		require.ErrorIs(t, err, queries.ErrGetBestRestaurantQueryIsNotConstructed)
	})
}

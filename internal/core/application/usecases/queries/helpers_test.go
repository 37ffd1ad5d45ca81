package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uowFactory  *memory.UnitOfWorkFactory
	catalogRepo ports.CatalogRepository
	orderRepo   ports.OrderRepository
	ratingRepo  ports.RatingRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore(nil, slog.New(slog.DiscardHandler))
	factory := memory.NewUnitOfWorkFactory(store)
	uow := factory.Create()
	return fixture{
		uowFactory:  factory,
		catalogRepo: uow.CatalogRepository(),
		orderRepo:   uow.OrderRepository(),
		ratingRepo:  uow.RatingRepository(),
	}
}

func (f fixture) category(t *testing.T, name string) {
	t.Helper()
	c, err := catalog.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.AddCategory(t.Context(), c))
}

func (f fixture) restaurant(t *testing.T, name string, category string) {
	t.Helper()
	r, err := catalog.NewRestaurant(name, category)
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.SaveRestaurant(t.Context(), r))
}

func (f fixture) dish(t *testing.T, name string, restaurant string, price float64) {
	t.Helper()
	d, err := catalog.NewDish(name, restaurant, price)
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.AddDish(t.Context(), d))
}

func (f fixture) order(t *testing.T, restaurant string, assigned bool) {
	t.Helper()
	ctx := t.Context()
	id, err := f.orderRepo.NextID(ctx)
	require.NoError(t, err)
	lines, err := order.NewLines([]string{"Margherita"}, []int{1})
	require.NoError(t, err)
	o, err := order.NewOrder(id, lines, "Ann", restaurant, 12, 1)
	require.NoError(t, err)
	if assigned {
		require.NoError(t, o.Assign())
	}
	require.NoError(t, f.orderRepo.Add(ctx, o))
}

func (f fixture) rating(t *testing.T, restaurant string, values ...int) {
	t.Helper()
	for _, v := range values {
		r, err := rating.NewRating(restaurant, v)
		require.NoError(t, err)
		require.NoError(t, f.ratingRepo.Add(t.Context(), r))
	}
}

type MockRankingCache struct{ mock.Mock }

func (m *MockRankingCache) Get(ctx context.Context) ([]services.RestaurantRating, int64, bool, error) {
	args := m.Called(ctx)
	ranking, _ := args.Get(0).([]services.RestaurantRating)
	generation, _ := args.Get(1).(int64)
	return ranking, generation, args.Bool(2), args.Error(3)
}

func (m *MockRankingCache) Set(ctx context.Context, generation int64, ranking []services.RestaurantRating) error {
	args := m.Called(ctx, generation, ranking)
	return args.Error(0)
}

func (m *MockRankingCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

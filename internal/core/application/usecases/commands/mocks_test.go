package commands_test

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddCategory(ctx context.Context, category catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) GetAllCategories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCatalogRepository) SaveRestaurant(ctx context.Context, restaurant catalog.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetAllRestaurants(ctx context.Context) ([]catalog.Restaurant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogRepository) GetRestaurantsByCategory(
	ctx context.Context,
	category string,
) ([]catalog.Restaurant, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogRepository) AddDish(ctx context.Context, dish catalog.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockCatalogRepository) DishExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) GetAllDishes(ctx context.Context) ([]catalog.Dish, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Dish), args.Error(1)
}

func (m *MockCatalogRepository) GetDishesByRestaurant(ctx context.Context, restaurant string) ([]catalog.Dish, error) {
	args := m.Called(ctx, restaurant)
	return args.Get(0).([]catalog.Dish), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (order.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.ID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) CountPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) CountByRestaurant(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) GetAll(ctx context.Context) ([]*rating.Rating, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCatalogUoW struct{ MockTxManager }

func (m *MockCatalogUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockOrderUoW struct{ MockTxManager }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockRatingUoW struct{ MockTxManager }

func (m *MockRatingUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
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

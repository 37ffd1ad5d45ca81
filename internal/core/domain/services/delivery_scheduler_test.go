package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id order.ID, hour int, distance int) *order.Order {
	t.Helper()
	lines, err := order.NewLines([]string{"Margherita"}, []int{1})
	require.NoError(t, err)
	o, err := order.NewOrder(id, lines, "Ann", "Luigi's", hour, distance)
	require.NoError(t, err)
	return o
}

func ids(orders []*order.Order) []order.ID {
	result := make([]order.ID, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}

func TestDeliveryScheduler_Schedule(t *testing.T) {
	scheduler := services.NewDeliveryScheduler()

	t.Run("should select matching orders in id order and assign them", func(t *testing.T) {
		orders := []*order.Order{
			newOrder(t, 3, 12, 2),
			newOrder(t, 1, 12, 3),
			newOrder(t, 2, 13, 1),
			newOrder(t, 4, 12, 9),
		}

		selected, err := scheduler.Schedule(orders, 12, 5, 10)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{1, 3}, ids(selected))
		for _, o := range selected {
			assert.Equal(t, order.Assigned, o.Status())
		}
		assert.True(t, orders[2].IsPending())
		assert.True(t, orders[3].IsPending())
	})

	t.Run("should not reorder the caller's slice", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, 2, 12, 0), newOrder(t, 1, 12, 0)}

		_, err := scheduler.Schedule(orders, 12, 5, 10)

		require.NoError(t, err)
		assert.Equal(t, order.ID(2), orders[0].ID())
	})

	t.Run("should include orders exactly at max distance", func(t *testing.T) {
		selected, err := scheduler.Schedule([]*order.Order{newOrder(t, 1, 12, 5)}, 12, 5, 1)

		require.NoError(t, err)
		assert.Len(t, selected, 1)
	})

	t.Run("should respect the cap and leave the rest pending", func(t *testing.T) {
		orders := []*order.Order{
			newOrder(t, 1, 12, 0),
			newOrder(t, 2, 12, 0),
			newOrder(t, 3, 12, 0),
		}

		selected, err := scheduler.Schedule(orders, 12, 5, 2)

		require.NoError(t, err)
		assert.Equal(t, []order.ID{1, 2}, ids(selected))
		assert.True(t, orders[2].IsPending())
	})

	t.Run("should take nothing with non-positive cap", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, 1, 12, 0)}

		for _, limit := range []int{0, -1} {
			selected, err := scheduler.Schedule(orders, 12, 5, limit)

			require.NoError(t, err)
			assert.Empty(t, selected)
			assert.NotNil(t, selected)
		}
		assert.True(t, orders[0].IsPending())
	})

	t.Run("should skip assigned orders", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, 1, 12, 0)}

		first, err := scheduler.Schedule(orders, 12, 5, 10)
		require.NoError(t, err)
		second, err := scheduler.Schedule(orders, 12, 5, 10)
		require.NoError(t, err)

		assert.Len(t, first, 1)
		assert.Empty(t, second)
	})

	t.Run("should return empty result when nothing matches", func(t *testing.T) {
		selected, err := scheduler.Schedule(nil, 12, 5, 10)

		require.NoError(t, err)
		assert.Empty(t, selected)
	})

	t.Run("should fail on an unconstructed order", func(t *testing.T) {
		_, err := scheduler.Schedule([]*order.Order{{}}, 12, 5, 10)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

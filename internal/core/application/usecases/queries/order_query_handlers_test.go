package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPendingOrderCountQueryHandler_Handle(t *testing.T) {
	f := newFixture(t)
	h := queries.NewGetPendingOrderCountQueryHandler(f.orderRepo)

	t.Run("should be zero without orders", func(t *testing.T) {
		count, err := h.Handle(t.Context(), queries.NewGetPendingOrderCountQuery())

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should count only pending orders", func(t *testing.T) {
		f.order(t, "Luigi's", false)
		f.order(t, "Luigi's", true)
		f.order(t, "Hiro", false)

		count, err := h.Handle(t.Context(), queries.NewGetPendingOrderCountQuery())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestGetOrdersPerCategoryQueryHandler_Handle(t *testing.T) {
	f := newFixture(t)
	f.category(t, "Pizza")
	f.category(t, "Sushi")
	f.category(t, "Burgers")
	f.restaurant(t, "Luigi's", "Pizza")
	f.restaurant(t, "Hiro", "Sushi")
	f.order(t, "Luigi's", false)
	f.order(t, "Luigi's", true)
	f.order(t, "Hiro", false)
	f.order(t, "Ghost Kitchen", false)

	h := queries.NewGetOrdersPerCategoryQueryHandler(f.catalogRepo, f.orderRepo)

	rows, err := h.Handle(t.Context(), queries.NewGetOrdersPerCategoryQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.GetOrdersPerCategoryQueryResponse{
		{Category: "Pizza", Orders: 2},
		{Category: "Sushi", Orders: 1},
		{Category: "Burgers", Orders: 0},
	}, rows)
}

package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCategoryCommand(t *testing.T) {
	t.Run("should keep the name", func(t *testing.T) {
		cmd, err := commands.NewAddCategoryCommand("Pizza")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Pizza", cmd.Name())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := commands.NewAddCategoryCommand("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.AddCategoryCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddCategoryCommandIsNotConstructed)
	})
}

func TestNewAddRestaurantCommand(t *testing.T) {
	t.Run("should keep name and category", func(t *testing.T) {
		cmd, err := commands.NewAddRestaurantCommand("Luigi's", "Pizza")

		require.NoError(t, err)
		assert.Equal(t, "Luigi's", cmd.Name())
		assert.Equal(t, "Pizza", cmd.Category())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := commands.NewAddRestaurantCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "restaurant name")
		assert.Contains(t, err.Error(), "category name")
	})
}

func TestNewAddDishCommand(t *testing.T) {
	t.Run("should keep all fields", func(t *testing.T) {
		cmd, err := commands.NewAddDishCommand("Margherita", "Luigi's", 8.5)

		require.NoError(t, err)
		assert.Equal(t, "Margherita", cmd.Name())
		assert.Equal(t, "Luigi's", cmd.Restaurant())
		assert.InDelta(t, 8.5, cmd.Price(), 1e-9)
	})

	t.Run("should reject blank names", func(t *testing.T) {
		_, err := commands.NewAddDishCommand("", "", 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.AddDishCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddDishCommandIsNotConstructed)
	})
}

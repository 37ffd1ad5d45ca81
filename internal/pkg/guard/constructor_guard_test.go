package guard_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("Line must be created via NewLine")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_constructed_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		clone := g

		require.NoError(t, clone.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type price struct {
		cents int
		guard guard.ConstructorGuard
	}
	errPriceNotConstructed := errors.New("price must be created via newPrice")

	newPrice := func(cents int) (price, error) {
		if cents < 0 {
			return price{}, errors.New("price cannot be negative")
		}
		return price{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		p, err := newPrice(800)

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPriceNotConstructed))
	})

	t.Run("rejected_construction_returns_zero_value", func(t *testing.T) {
		p, err := newPrice(-1)

		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, p.guard.Validate(errPriceNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")

	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}

package memory

import (
	"maps"
	"slices"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type categoryRecord struct {
	name string
}

type restaurantRecord struct {
	name     string
	category string
}

type dishRecord struct {
	name       string
	restaurant string
	price      float64
}

type lineRecord struct {
	dishName string
	quantity int
}

type orderRecord struct {
	id               order.ID
	lines            []lineRecord
	customer         string
	restaurant       string
	deliveryTime     int
	deliveryDistance int
	status           order.Status
}

type ratingRecord struct {
	id         uuid.UUID
	restaurant string
	value      int
}

// state is plain data. Aggregates never escape into it, so a shallow copy of
// the slices plus a copy of each order's lines is a full snapshot.
type state struct {
	categories  []categoryRecord
	restaurants []restaurantRecord
	dishes      []dishRecord
	orders      []orderRecord
	ratings     []ratingRecord

	restaurantIndex map[string]int
	orderIndex      map[order.ID]int
}

func newState() *state {
	return &state{
		restaurantIndex: make(map[string]int),
		orderIndex:      make(map[order.ID]int),
	}
}

func (s *state) clone() *state {
	orders := make([]orderRecord, len(s.orders))
	for i, o := range s.orders {
		o.lines = slices.Clone(o.lines)
		orders[i] = o
	}

	return &state{
		categories:      slices.Clone(s.categories),
		restaurants:     slices.Clone(s.restaurants),
		dishes:          slices.Clone(s.dishes),
		orders:          orders,
		ratings:         slices.Clone(s.ratings),
		restaurantIndex: maps.Clone(s.restaurantIndex),
		orderIndex:      maps.Clone(s.orderIndex),
	}
}

func (s *state) hasCategory(name string) bool {
	return slices.ContainsFunc(s.categories, func(c categoryRecord) bool {
		return c.name == name
	})
}

func (s *state) hasDish(name string) bool {
	return slices.ContainsFunc(s.dishes, func(d dishRecord) bool {
		return d.name == name
	})
}

package services

import (
	"cmp"
	"slices"

	"fooddelivery/internal/core/domain/model/order"
)

// DeliveryScheduler selects the orders that ride on one delivery run.
//
// Business rules:
//   - Orders are scanned in creation (id) order
//   - Only pending orders for exactly the requested hour qualify
//   - The delivery distance must not exceed the run's maximum
//   - At most maxOrders orders are taken; a non-positive cap takes none
//   - Every selected order is assigned before it is returned
type DeliveryScheduler struct{}

func NewDeliveryScheduler() DeliveryScheduler {
	return DeliveryScheduler{}
}

// Schedule assigns the qualifying orders and returns them in scan order. Unmet
// constraints are not errors; they just shorten the result.
func (s DeliveryScheduler) Schedule(
	orders []*order.Order,
	deliveryTime int,
	maxDistance int,
	maxOrders int,
) ([]*order.Order, error) {
	if maxOrders <= 0 {
		return []*order.Order{}, nil
	}

	candidates, err := s.sortedByID(orders)
	if err != nil {
		return nil, err
	}

	selected := make([]*order.Order, 0, min(maxOrders, len(candidates)))
	for _, o := range candidates {
		if len(selected) == maxOrders {
			break
		}
		if !o.MatchesDelivery(deliveryTime, maxDistance) {
			continue
		}
		selected = append(selected, o)
	}

	for _, o := range selected {
		if err = o.Assign(); err != nil {
			return nil, err
		}
	}

	return selected, nil
}

func (s DeliveryScheduler) sortedByID(orders []*order.Order) ([]*order.Order, error) {
	sorted := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		sorted = append(sorted, o)
	}

	slices.SortFunc(sorted, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return sorted, nil
}

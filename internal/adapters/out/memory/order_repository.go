package memory

import (
	"cmp"
	"context"
	"slices"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

type OrderRepository struct {
	access accessor
}

func newOrderRepository(access accessor) *OrderRepository {
	return &OrderRepository{access: access}
}

// NextID draws from a counter that lives outside the transactional state, so
// an id reserved by a rolled back unit of work is skipped, not reused.
func (r *OrderRepository) NextID(_ context.Context) (order.ID, error) {
	return r.access.nextOrderID(), nil
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := orderFromDomain(aggregate)
	err := r.access.write(ctx, func(st *state) error {
		if _, ok := st.orderIndex[rec.id]; ok {
			return errs.NewObjectAlreadyExistsError("order", rec.id)
		}
		st.orderIndex[rec.id] = len(st.orders)
		st.orders = append(st.orders, rec)
		return nil
	})
	if err != nil {
		return err
	}

	r.access.track(ctx, aggregate)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := orderFromDomain(aggregate)
	err := r.access.write(ctx, func(st *state) error {
		i, ok := st.orderIndex[rec.id]
		if !ok {
			return errs.NewObjectNotFoundError("order", rec.id)
		}
		st.orders[i] = rec
		return nil
	})
	if err != nil {
		return err
	}

	r.access.track(ctx, aggregate)
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.access.read(ctx, func(st *state) error {
		i, ok := st.orderIndex[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id)
		}

		o, err := orderToDomain(st.orders[i])
		if err != nil {
			return err
		}
		found = o
		return nil
	})
	return found, err
}

func (r *OrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	var pending []*order.Order
	err := r.access.read(ctx, func(st *state) error {
		pending = make([]*order.Order, 0)
		for _, rec := range st.orders {
			if rec.status != order.Pending {
				continue
			}
			o, err := orderToDomain(rec)
			if err != nil {
				return err
			}
			pending = append(pending, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(pending, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return pending, nil
}

func (r *OrderRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.access.read(ctx, func(st *state) error {
		for _, rec := range st.orders {
			if rec.status == order.Pending {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *OrderRepository) CountByRestaurant(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	err := r.access.read(ctx, func(st *state) error {
		for _, rec := range st.orders {
			counts[rec.restaurant]++
		}
		return nil
	})
	return counts, err
}

func orderFromDomain(o *order.Order) orderRecord {
	lines := o.Lines()
	records := make([]lineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, lineRecord{dishName: line.DishName(), quantity: line.Quantity()})
	}

	return orderRecord{
		id:               o.ID(),
		lines:            records,
		customer:         o.Customer(),
		restaurant:       o.Restaurant(),
		deliveryTime:     o.DeliveryTime(),
		deliveryDistance: o.DeliveryDistance(),
		status:           o.Status(),
	}
}

func orderToDomain(rec orderRecord) (*order.Order, error) {
	lines := make([]order.Line, 0, len(rec.lines))
	for _, l := range rec.lines {
		line, err := order.NewLine(l.dishName, l.quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		rec.id,
		lines,
		rec.customer,
		rec.restaurant,
		rec.deliveryTime,
		rec.deliveryDistance,
		rec.status,
	)
}

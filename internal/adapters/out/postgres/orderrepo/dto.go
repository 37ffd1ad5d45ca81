// Package orderrepo persists order aggregates with GORM. Order lines are stored
// as two parallel PostgreSQL arrays on the order row.
package orderrepo

import (
	"fooddelivery/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// IDSequence hands out order ids. Sequence values are never rolled back, so an
// id reserved by a failed transaction is skipped, not reused.
const IDSequence = "order_id_seq"

type OrderDTO struct {
	ID               int64          `gorm:"primaryKey;autoIncrement:false"`
	DishNames        pq.StringArray `gorm:"type:text[];not null"`
	Quantities       pq.Int64Array  `gorm:"type:bigint[];not null"`
	Customer         string         `gorm:"not null"`
	Restaurant       string         `gorm:"index;not null"`
	DeliveryTime     int            `gorm:"not null"`
	DeliveryDistance int            `gorm:"not null"`
	Status           int            `gorm:"index;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	names := make(pq.StringArray, 0, len(lines))
	quantities := make(pq.Int64Array, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.DishName())
		quantities = append(quantities, int64(line.Quantity()))
	}

	return OrderDTO{
		ID:               int64(o.ID()),
		DishNames:        names,
		Quantities:       quantities,
		Customer:         o.Customer(),
		Restaurant:       o.Restaurant(),
		DeliveryTime:     o.DeliveryTime(),
		DeliveryDistance: o.DeliveryDistance(),
		Status:           int(o.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	quantities := make([]int, 0, len(dto.Quantities))
	for _, q := range dto.Quantities {
		quantities = append(quantities, int(q))
	}

	lines, err := order.NewLines(dto.DishNames, quantities)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		order.ID(dto.ID),
		lines,
		dto.Customer,
		dto.Restaurant,
		dto.DeliveryTime,
		dto.DeliveryDistance,
		order.Status(dto.Status),
	)
}

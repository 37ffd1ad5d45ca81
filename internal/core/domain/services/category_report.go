package services

import (
	"fooddelivery/internal/core/domain/model/catalog"
)

// CategoryOrderCount is one row of the orders-per-category report.
type CategoryOrderCount struct {
	Category string
	Orders   int
}

// CategoryReport folds order counts into catalog categories.
type CategoryReport struct{}

func NewCategoryReport() CategoryReport {
	return CategoryReport{}
}

// OrdersPerCategory returns one row per category, in the order the categories
// are given, including categories with zero orders. ordersByRestaurant maps a
// restaurant name to its order count; restaurants missing from the catalog are
// not counted.
func (r CategoryReport) OrdersPerCategory(
	categories []catalog.Category,
	restaurants []catalog.Restaurant,
	ordersByRestaurant map[string]int,
) ([]CategoryOrderCount, error) {
	report := make([]CategoryOrderCount, 0, len(categories))
	position := make(map[string]int, len(categories))
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		position[c.Name()] = len(report)
		report = append(report, CategoryOrderCount{Category: c.Name()})
	}

	for _, restaurant := range restaurants {
		if err := restaurant.Validate(); err != nil {
			return nil, err
		}

		count, ok := ordersByRestaurant[restaurant.Name()]
		if !ok {
			continue
		}
		if i, known := position[restaurant.Category()]; known {
			report[i].Orders += count
		}
	}

	return report, nil
}

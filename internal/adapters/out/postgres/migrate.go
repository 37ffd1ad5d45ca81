package postgres

import (
	"fmt"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/ratingrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table and the order id sequence. It is
// idempotent and runs at startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalogrepo.CategoryDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&ratingrepo.RatingDTO{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + orderrepo.IDSequence).Error; err != nil {
		return fmt.Errorf("create %s: %w", orderrepo.IDSequence, err)
	}

	return nil
}

// Tables lists the tables Migrate manages. Tests truncate them between cases.
func Tables() []string {
	return []string{"categories", "restaurants", "dishes", "orders", "ratings"}
}

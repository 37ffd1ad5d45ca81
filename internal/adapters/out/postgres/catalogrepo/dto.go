// Package catalogrepo persists categories, restaurants and dishes with GORM.
// Each table carries a serial Seq column so listings keep insertion order.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
)

type CategoryDTO struct {
	Seq  int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// RestaurantDTO is upserted by name. The category column is not a foreign key:
// the command layer checks it, and restaurants may be re-registered under a new one.
type RestaurantDTO struct {
	Seq      int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"uniqueIndex;not null"`
	Category string `gorm:"index;not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type DishDTO struct {
	Seq        int64   `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"uniqueIndex;not null"`
	Restaurant string  `gorm:"index;not null"`
	Price      float64 `gorm:"type:double precision;not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func restaurantFromDomain(r catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		Name:     r.Name(),
		Category: r.Category(),
	}
}

func dishFromDomain(d catalog.Dish) DishDTO {
	return DishDTO{
		Name:       d.Name(),
		Restaurant: d.Restaurant(),
		Price:      d.Price(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (catalog.Restaurant, error) {
	return catalog.NewRestaurant(dto.Name, dto.Category)
}

func dishToDomain(dto DishDTO) (catalog.Dish, error) {
	return catalog.NewDish(dto.Name, dto.Restaurant, dto.Price)
}

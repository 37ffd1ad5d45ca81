package catalogrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/pgerrors"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AddCategory(ctx context.Context, category catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := CategoryDTO{Name: category.Name()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("category", category.Name(), err)
		}
		return err
	}

	return nil
}

func (r *GormCatalogRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &CategoryDTO{}, name)
}

func (r *GormCatalogRepository) GetAllCategories(ctx context.Context) ([]catalog.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, err := catalog.NewCategory(dto.Name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// SaveRestaurant upserts on the name. An existing row keeps its Seq and with
// it its position in listings.
func (r *GormCatalogRepository) SaveRestaurant(ctx context.Context, restaurant catalog.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(restaurant)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"category"}),
		}).
		Create(&dto).Error
}

func (r *GormCatalogRepository) GetAllRestaurants(ctx context.Context) ([]catalog.Restaurant, error) {
	return r.restaurants(r.db.WithContext(ctx))
}

func (r *GormCatalogRepository) GetRestaurantsByCategory(
	ctx context.Context,
	category string,
) ([]catalog.Restaurant, error) {
	return r.restaurants(r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *GormCatalogRepository) restaurants(query *gorm.DB) ([]catalog.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]catalog.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		restaurant, err := restaurantToDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

func (r *GormCatalogRepository) AddDish(ctx context.Context, dish catalog.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(dish)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("dish", dish.Name(), err)
		}
		return err
	}

	return nil
}

func (r *GormCatalogRepository) DishExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &DishDTO{}, name)
}

func (r *GormCatalogRepository) GetAllDishes(ctx context.Context) ([]catalog.Dish, error) {
	return r.dishes(r.db.WithContext(ctx))
}

func (r *GormCatalogRepository) GetDishesByRestaurant(ctx context.Context, restaurant string) ([]catalog.Dish, error) {
	return r.dishes(r.db.WithContext(ctx).Where("restaurant = ?", restaurant))
}

func (r *GormCatalogRepository) dishes(query *gorm.DB) ([]catalog.Dish, error) {
	var dtos []DishDTO
	if err := query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]catalog.Dish, 0, len(dtos))
	for _, dto := range dtos {
		dish, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

func (r *GormCatalogRepository) exists(ctx context.Context, model any, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/eventlog"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	cache      ports.RankingCache
	closers    []func() error
}

// NewCompositionRoot connects the configured adapters. Call Close when done.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{config: config, logger: logger}

	var publisher ports.EventPublisher
	if config.KafkaHost != "" {
		writer := kafka.NewWriter(config.KafkaHost, config.KafkaEventsTopic)
		kafkaPublisher := kafka.NewEventPublisher(writer, logger)
		c.closers = append(c.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
	} else {
		publisher = eventlog.NewPublisher(logger)
	}

	switch config.Storage {
	case StoragePostgres:
		gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			return nil, errors.Join(fmt.Errorf("connect to postgres: %w", err), c.Close())
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			c.closers = append(c.closers, sqlDB.Close)
		}
		if err = postgres.Migrate(gormDB); err != nil {
			return nil, errors.Join(fmt.Errorf("migrate: %w", err), c.Close())
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
	default:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(publisher, logger))
	}

	if config.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
		c.closers = append(c.closers, client.Close)
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, errors.Join(fmt.Errorf("connect to redis: %w", err), c.Close())
		}
		c.cache = redis.NewRankingCache(client, redis.DefaultRankingKey, config.RankingCacheTTL)
	}

	return c, nil
}

// Close releases connections in reverse order of acquisition.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCategoryCommandHandler() commands.AddCategoryCommandHandler {
	return commands.NewAddCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddRestaurantCommandHandler() commands.AddRestaurantCommandHandler {
	return commands.NewAddRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddDishCommandHandler() commands.AddDishCommandHandler {
	return commands.NewAddDishCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	return commands.NewScheduleDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddRatingCommandHandler() commands.AddRatingCommandHandler {
	return commands.NewAddRatingCommandHandler(c.ratingUoWFactory(), c.cache, c.logger)
}

// Queries read outside a transaction, straight from the repositories of a
// unit of work that is never begun.

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.uowFactory.Create().CatalogRepository())
}

func (c *CompositionRoot) CreateGetRestaurantsInCategoryQueryHandler() queries.GetRestaurantsInCategoryQueryHandler {
	return queries.NewGetRestaurantsInCategoryQueryHandler(c.uowFactory.Create().CatalogRepository())
}

func (c *CompositionRoot) CreateGetDishesForRestaurantQueryHandler() queries.GetDishesForRestaurantQueryHandler {
	return queries.NewGetDishesForRestaurantQueryHandler(c.uowFactory.Create().CatalogRepository())
}

func (c *CompositionRoot) CreateGetDishesByPriceRangeQueryHandler() queries.GetDishesByPriceRangeQueryHandler {
	return queries.NewGetDishesByPriceRangeQueryHandler(c.uowFactory.Create().CatalogRepository())
}

func (c *CompositionRoot) CreateGetDishesByCategoryQueryHandler() queries.GetDishesByCategoryQueryHandler {
	return queries.NewGetDishesByCategoryQueryHandler(c.uowFactory.Create().CatalogRepository())
}

func (c *CompositionRoot) CreateGetPendingOrderCountQueryHandler() queries.GetPendingOrderCountQueryHandler {
	return queries.NewGetPendingOrderCountQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetRankedRestaurantsQueryHandler() queries.GetRankedRestaurantsQueryHandler {
	return queries.NewGetRankedRestaurantsQueryHandler(c.uowFactory.Create().RatingRepository(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetBestRestaurantQueryHandler() queries.GetBestRestaurantQueryHandler {
	return queries.NewGetBestRestaurantQueryHandler(c.CreateGetRankedRestaurantsQueryHandler())
}

func (c *CompositionRoot) CreateGetOrdersPerCategoryQueryHandler() queries.GetOrdersPerCategoryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrdersPerCategoryQueryHandler(uow.CatalogRepository(), uow.OrderRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddCategory:      c.CreateAddCategoryCommandHandler(),
		AddRestaurant:    c.CreateAddRestaurantCommandHandler(),
		AddDish:          c.CreateAddDishCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		ScheduleDelivery: c.CreateScheduleDeliveryCommandHandler(),
		AddRating:        c.CreateAddRatingCommandHandler(),

		ListCategories:           c.CreateListCategoriesQueryHandler(),
		GetRestaurantsInCategory: c.CreateGetRestaurantsInCategoryQueryHandler(),
		GetDishesForRestaurant:   c.CreateGetDishesForRestaurantQueryHandler(),
		GetDishesByPriceRange:    c.CreateGetDishesByPriceRangeQueryHandler(),
		GetDishesByCategory:      c.CreateGetDishesByCategoryQueryHandler(),
		GetPendingOrderCount:     c.CreateGetPendingOrderCountQueryHandler(),
		GetRankedRestaurants:     c.CreateGetRankedRestaurantsQueryHandler(),
		GetBestRestaurant:        c.CreateGetBestRestaurantQueryHandler(),
		GetOrdersPerCategory:     c.CreateGetOrdersPerCategoryQueryHandler(),
	})
}

func (c *CompositionRoot) CreateDeliverySchedulingJob() *jobs.DeliverySchedulingJob {
	return jobs.NewDeliverySchedulingJob(
		c.CreateScheduleDeliveryCommandHandler(),
		jobs.DeliverySchedulingConfig{
			Schedule:    c.config.ScheduleCron,
			MaxDistance: c.config.ScheduleMaxDistance,
			MaxOrders:   c.config.ScheduleMaxOrders,
		},
		c.logger,
	)
}

// CreateJobs returns the background jobs enabled by the configuration. The
// delivery scheduling job only runs when SCHEDULE_CRON is set.
func (c *CompositionRoot) CreateJobs() []jobs.Job {
	var enabled []jobs.Job
	if c.config.ScheduleCron != "" {
		enabled = append(enabled, c.CreateDeliverySchedulingJob())
	}
	return enabled
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateJobs()...)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

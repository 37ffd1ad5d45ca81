package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface. It translates HTTP requests into commands
// and queries and their results into the document's wire types.
type Server struct {
	// Command handlers
	addCategoryHandler      commands.AddCategoryCommandHandler
	addRestaurantHandler    commands.AddRestaurantCommandHandler
	addDishHandler          commands.AddDishCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler
	addRatingHandler        commands.AddRatingCommandHandler

	// Query handlers
	listCategoriesHandler           queries.ListCategoriesQueryHandler
	getRestaurantsInCategoryHandler queries.GetRestaurantsInCategoryQueryHandler
	getDishesForRestaurantHandler   queries.GetDishesForRestaurantQueryHandler
	getDishesByPriceRangeHandler    queries.GetDishesByPriceRangeQueryHandler
	getDishesByCategoryHandler      queries.GetDishesByCategoryQueryHandler
	getPendingOrderCountHandler     queries.GetPendingOrderCountQueryHandler
	getRankedRestaurantsHandler     queries.GetRankedRestaurantsQueryHandler
	getBestRestaurantHandler        queries.GetBestRestaurantQueryHandler
	getOrdersPerCategoryHandler     queries.GetOrdersPerCategoryQueryHandler
}

// Handlers groups the use case handlers the server needs.
type Handlers struct {
	AddCategory      commands.AddCategoryCommandHandler
	AddRestaurant    commands.AddRestaurantCommandHandler
	AddDish          commands.AddDishCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	ScheduleDelivery commands.ScheduleDeliveryCommandHandler
	AddRating        commands.AddRatingCommandHandler

	ListCategories           queries.ListCategoriesQueryHandler
	GetRestaurantsInCategory queries.GetRestaurantsInCategoryQueryHandler
	GetDishesForRestaurant   queries.GetDishesForRestaurantQueryHandler
	GetDishesByPriceRange    queries.GetDishesByPriceRangeQueryHandler
	GetDishesByCategory      queries.GetDishesByCategoryQueryHandler
	GetPendingOrderCount     queries.GetPendingOrderCountQueryHandler
	GetRankedRestaurants     queries.GetRankedRestaurantsQueryHandler
	GetBestRestaurant        queries.GetBestRestaurantQueryHandler
	GetOrdersPerCategory     queries.GetOrdersPerCategoryQueryHandler
}

func NewServer(h Handlers) *Server {
	return &Server{
		addCategoryHandler:              h.AddCategory,
		addRestaurantHandler:            h.AddRestaurant,
		addDishHandler:                  h.AddDish,
		createOrderHandler:              h.CreateOrder,
		scheduleDeliveryHandler:         h.ScheduleDelivery,
		addRatingHandler:                h.AddRating,
		listCategoriesHandler:           h.ListCategories,
		getRestaurantsInCategoryHandler: h.GetRestaurantsInCategory,
		getDishesForRestaurantHandler:   h.GetDishesForRestaurant,
		getDishesByPriceRangeHandler:    h.GetDishesByPriceRange,
		getDishesByCategoryHandler:      h.GetDishesByCategory,
		getPendingOrderCountHandler:     h.GetPendingOrderCount,
		getRankedRestaurantsHandler:     h.GetRankedRestaurants,
		getBestRestaurantHandler:        h.GetBestRestaurant,
		getOrdersPerCategoryHandler:     h.GetOrdersPerCategory,
	}
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	names, err := s.listCategoriesHandler.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve categories")
	}
	return ctx.JSON(http.StatusOK, names)
}

// AddCategory handles POST /api/v1/categories.
func (s *Server) AddCategory(ctx echo.Context) error {
	var body NewCategory
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddCategoryCommand(body.Name)
	if err != nil {
		return writeBadRequest(ctx, "Invalid category data: "+err.Error())
	}

	if err = s.addCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to add category")
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetRestaurantsInCategory handles GET /api/v1/categories/{category}/restaurants.
func (s *Server) GetRestaurantsInCategory(ctx echo.Context, category string) error {
	names, err := s.getRestaurantsInCategoryHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetRestaurantsInCategoryQuery(category),
	)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve restaurants")
	}
	return ctx.JSON(http.StatusOK, names)
}

// GetDishesByCategory handles GET /api/v1/categories/{category}/dishes.
func (s *Server) GetDishesByCategory(ctx echo.Context, category string) error {
	names, err := s.getDishesByCategoryHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDishesByCategoryQuery(category),
	)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve dishes")
	}
	return ctx.JSON(http.StatusOK, names)
}

// AddRestaurant handles POST /api/v1/restaurants.
func (s *Server) AddRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddRestaurantCommand(body.Name, body.Category)
	if err != nil {
		return writeBadRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	if err = s.addRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to add restaurant")
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetRestaurantRanking handles GET /api/v1/restaurants/ranking.
func (s *Server) GetRestaurantRanking(ctx echo.Context) error {
	ranking, err := s.getRankedRestaurantsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetRankedRestaurantsQuery(),
	)
	if err != nil {
		return writeError(ctx, err, "Failed to rank restaurants")
	}

	response := make([]RestaurantRating, len(ranking))
	for i, r := range ranking {
		response[i] = RestaurantRating{
			Restaurant: r.Restaurant,
			Average:    r.Average,
			Count:      r.Count,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetBestRestaurant handles GET /api/v1/restaurants/best.
func (s *Server) GetBestRestaurant(ctx echo.Context) error {
	best, err := s.getBestRestaurantHandler.Handle(ctx.Request().Context(), queries.NewGetBestRestaurantQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to find the best restaurant")
	}

	response := BestRestaurant{Found: best.Found}
	if best.Found {
		response.Restaurant = &best.Restaurant
		response.Average = &best.Average
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDishesForRestaurant handles GET /api/v1/restaurants/{restaurant}/dishes.
func (s *Server) GetDishesForRestaurant(ctx echo.Context, restaurant string) error {
	names, err := s.getDishesForRestaurantHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDishesForRestaurantQuery(restaurant),
	)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve dishes")
	}
	return ctx.JSON(http.StatusOK, names)
}

// GetDishesByPriceRange handles GET /api/v1/dishes.
func (s *Server) GetDishesByPriceRange(ctx echo.Context, params GetDishesByPriceRangeParams) error {
	query, err := queries.NewGetDishesByPriceRangeQuery(params.MinPrice, params.MaxPrice)
	if err != nil {
		return writeBadRequest(ctx, "Invalid price range: "+err.Error())
	}

	byRestaurant, err := s.getDishesByPriceRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve dishes")
	}
	return ctx.JSON(http.StatusOK, byRestaurant)
}

// AddDish handles POST /api/v1/dishes.
func (s *Server) AddDish(ctx echo.Context) error {
	var body NewDish
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddDishCommand(body.Name, body.Restaurant, body.Price)
	if err != nil {
		return writeBadRequest(ctx, "Invalid dish data: "+err.Error())
	}

	if err = s.addDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to add dish")
	}
	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		body.Dishes,
		body.Quantities,
		body.Customer,
		body.Restaurant,
		body.DeliveryTime,
		body.DeliveryDistance,
	)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}
	return ctx.JSON(http.StatusCreated, OrderCreated{Id: int64(id)})
}

// GetPendingOrderCount handles GET /api/v1/orders/pending/count.
func (s *Server) GetPendingOrderCount(ctx echo.Context) error {
	count, err := s.getPendingOrderCountHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetPendingOrderCountQuery(),
	)
	if err != nil {
		return writeError(ctx, err, "Failed to count pending orders")
	}
	return ctx.JSON(http.StatusOK, PendingCount{Count: count})
}

// ScheduleDelivery handles POST /api/v1/deliveries.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	var body ScheduleDelivery
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewScheduleDeliveryCommand(body.DeliveryTime, body.MaxDistance, body.MaxOrders)
	ids, err := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to schedule delivery")
	}

	response := ScheduledDelivery{OrderIds: make([]int64, len(ids))}
	for i, id := range ids {
		response.OrderIds[i] = int64(id)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddRating handles POST /api/v1/ratings. Out-of-range values are accepted
// with 202 and reported as not accepted.
func (s *Server) AddRating(ctx echo.Context) error {
	var body NewRating
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddRatingCommand(body.Restaurant, body.Value)
	if err != nil {
		return writeBadRequest(ctx, "Invalid rating data: "+err.Error())
	}

	accepted, err := s.addRatingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to add rating")
	}
	return ctx.JSON(http.StatusAccepted, RatingReceipt{Accepted: accepted})
}

// GetOrdersPerCategory handles GET /api/v1/reports/orders-per-category.
func (s *Server) GetOrdersPerCategory(ctx echo.Context) error {
	report, err := s.getOrdersPerCategoryHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetOrdersPerCategoryQuery(),
	)
	if err != nil {
		return writeError(ctx, err, "Failed to build the report")
	}

	response := make([]CategoryOrders, len(report))
	for i, row := range report {
		response[i] = CategoryOrders{
			Category: row.Category,
			Orders:   row.Orders,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

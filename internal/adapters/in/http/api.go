package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Wire types of the OpenAPI document in api/openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewCategory struct {
	Name string `json:"name"`
}

type NewRestaurant struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type NewDish struct {
	Name       string  `json:"name"`
	Restaurant string  `json:"restaurant"`
	Price      float64 `json:"price"`
}

type NewOrder struct {
	Dishes           []string `json:"dishes"`
	Quantities       []int    `json:"quantities"`
	Customer         string   `json:"customer"`
	Restaurant       string   `json:"restaurant"`
	DeliveryTime     int      `json:"deliveryTime"`
	DeliveryDistance int      `json:"deliveryDistance"`
}

type OrderCreated struct {
	Id int64 `json:"id"` //nolint:revive // matches the document's field name
}

type PendingCount struct {
	Count int `json:"count"`
}

type ScheduleDelivery struct {
	DeliveryTime int `json:"deliveryTime"`
	MaxDistance  int `json:"maxDistance"`
	MaxOrders    int `json:"maxOrders"`
}

type ScheduledDelivery struct {
	OrderIds []int64 `json:"orderIds"` //nolint:revive // matches the document's field name
}

type NewRating struct {
	Restaurant string `json:"restaurant"`
	Value      int    `json:"value"`
}

type RatingReceipt struct {
	Accepted bool `json:"accepted"`
}

type RestaurantRating struct {
	Restaurant string  `json:"restaurant"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
}

type BestRestaurant struct {
	Found      bool     `json:"found"`
	Restaurant *string  `json:"restaurant,omitempty"`
	Average    *float64 `json:"average,omitempty"`
}

type CategoryOrders struct {
	Category string `json:"category"`
	Orders   int    `json:"orders"`
}

type GetDishesByPriceRangeParams struct {
	MinPrice float64
	MaxPrice float64
}

// ServerInterface has one method per operation of the document.
type ServerInterface interface {
	ListCategories(ctx echo.Context) error
	AddCategory(ctx echo.Context) error
	GetRestaurantsInCategory(ctx echo.Context, category string) error
	GetDishesByCategory(ctx echo.Context, category string) error
	AddRestaurant(ctx echo.Context) error
	GetRestaurantRanking(ctx echo.Context) error
	GetBestRestaurant(ctx echo.Context) error
	GetDishesForRestaurant(ctx echo.Context, restaurant string) error
	GetDishesByPriceRange(ctx echo.Context, params GetDishesByPriceRangeParams) error
	AddDish(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	GetPendingOrderCount(ctx echo.Context) error
	ScheduleDelivery(ctx echo.Context) error
	AddRating(ctx echo.Context) error
	GetOrdersPerCategory(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListCategories(ctx echo.Context) error {
	return w.Handler.ListCategories(ctx)
}

func (w *ServerInterfaceWrapper) AddCategory(ctx echo.Context) error {
	return w.Handler.AddCategory(ctx)
}

func (w *ServerInterfaceWrapper) GetRestaurantsInCategory(ctx echo.Context) error {
	category, err := bindPathParam(ctx, "category")
	if err != nil {
		return err
	}
	return w.Handler.GetRestaurantsInCategory(ctx, category)
}

func (w *ServerInterfaceWrapper) GetDishesByCategory(ctx echo.Context) error {
	category, err := bindPathParam(ctx, "category")
	if err != nil {
		return err
	}
	return w.Handler.GetDishesByCategory(ctx, category)
}

func (w *ServerInterfaceWrapper) AddRestaurant(ctx echo.Context) error {
	return w.Handler.AddRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) GetRestaurantRanking(ctx echo.Context) error {
	return w.Handler.GetRestaurantRanking(ctx)
}

func (w *ServerInterfaceWrapper) GetBestRestaurant(ctx echo.Context) error {
	return w.Handler.GetBestRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) GetDishesForRestaurant(ctx echo.Context) error {
	restaurant, err := bindPathParam(ctx, "restaurant")
	if err != nil {
		return err
	}
	return w.Handler.GetDishesForRestaurant(ctx, restaurant)
}

func (w *ServerInterfaceWrapper) GetDishesByPriceRange(ctx echo.Context) error {
	var params GetDishesByPriceRangeParams

	if err := runtime.BindQueryParameter("form", true, true, "minPrice", ctx.QueryParams(), &params.MinPrice); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter minPrice: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, true, "maxPrice", ctx.QueryParams(), &params.MaxPrice); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter maxPrice: "+err.Error())
	}

	return w.Handler.GetDishesByPriceRange(ctx, params)
}

func (w *ServerInterfaceWrapper) AddDish(ctx echo.Context) error {
	return w.Handler.AddDish(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetPendingOrderCount(ctx echo.Context) error {
	return w.Handler.GetPendingOrderCount(ctx)
}

func (w *ServerInterfaceWrapper) ScheduleDelivery(ctx echo.Context) error {
	return w.Handler.ScheduleDelivery(ctx)
}

func (w *ServerInterfaceWrapper) AddRating(ctx echo.Context) error {
	return w.Handler.AddRating(ctx)
}

func (w *ServerInterfaceWrapper) GetOrdersPerCategory(ctx echo.Context) error {
	return w.Handler.GetOrdersPerCategory(ctx)
}

// bindPathParam unescapes a simple-style path parameter.
func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &value)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return value, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of the document on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/categories", w.ListCategories)
	router.POST("/api/v1/categories", w.AddCategory)
	router.GET("/api/v1/categories/:category/restaurants", w.GetRestaurantsInCategory)
	router.GET("/api/v1/categories/:category/dishes", w.GetDishesByCategory)
	router.POST("/api/v1/restaurants", w.AddRestaurant)
	router.GET("/api/v1/restaurants/ranking", w.GetRestaurantRanking)
	router.GET("/api/v1/restaurants/best", w.GetBestRestaurant)
	router.GET("/api/v1/restaurants/:restaurant/dishes", w.GetDishesForRestaurant)
	router.GET("/api/v1/dishes", w.GetDishesByPriceRange)
	router.POST("/api/v1/dishes", w.AddDish)
	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders/pending/count", w.GetPendingOrderCount)
	router.POST("/api/v1/deliveries", w.ScheduleDelivery)
	router.POST("/api/v1/ratings", w.AddRating)
	router.GET("/api/v1/reports/orders-per-category", w.GetOrdersPerCategory)
}

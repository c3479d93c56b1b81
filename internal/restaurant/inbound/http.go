package inbound

import (
	"context"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/entity"
)

type uc interface {
	ListRestaurants(ctx context.Context) ([]entity.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (entity.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID string) (entity.MenuItem, error)
}

const (
	paramRestaurantID = "restaurantId"
	paramItemID       = "itemId"
)

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/items/restaurants", end.Restaurants)
	r.GET("/items/restaurants/:"+paramRestaurantID, end.Restaurant)
	r.GET("/items/restaurants/:"+paramRestaurantID+"/menu", end.Menu)
	r.GET("/items/restaurants/:"+paramRestaurantID+"/menu/:"+paramItemID, end.MenuItem)
}

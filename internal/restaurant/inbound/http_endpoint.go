package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Restaurants(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.ListRestaurants(ctx)
}

func (h *HTTPEndpoint) Restaurant(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.GetRestaurant(ctx, pkgrouter.PathParam(ctx, paramRestaurantID))
}

func (h *HTTPEndpoint) Menu(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.ListMenu(ctx, pkgrouter.PathParam(ctx, paramRestaurantID))
}

func (h *HTTPEndpoint) MenuItem(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.GetMenuItem(ctx,
		pkgrouter.PathParam(ctx, paramRestaurantID),
		pkgrouter.PathParam(ctx, paramItemID),
	)
}

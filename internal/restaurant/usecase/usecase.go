package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/entity"
)

// Store is the read side of the key-value store. Point reads return
// pkgerror.ErrNotFound when the key is absent; any other error is a store
// failure.
type Store interface {
	ScanRestaurants(ctx context.Context) ([]entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (entity.Restaurant, error)
	QueryMenu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID string) (entity.MenuItem, error)
}

type Dependency struct {
	Store Store
}

type Usecase struct {
	store Store
}

func New(dep Dependency) *Usecase {
	return &Usecase{store: dep.Store}
}

func (u *Usecase) ListRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	items, err := u.store.ScanRestaurants(ctx)
	if err != nil {
		return nil, storeFailure(ctx, err, msgLoadRestaurants)
	}

	if items == nil {
		items = []entity.Restaurant{}
	}

	return items, nil
}

func (u *Usecase) GetRestaurant(ctx context.Context, restaurantID string) (entity.Restaurant, error) {
	if blank(restaurantID) {
		return nil, pkgerror.NewBadRequest(msgInvalidRestaurantID)
	}

	item, err := u.store.GetRestaurant(ctx, restaurantID)
	if errors.Is(err, pkgerror.ErrNotFound) {
		return nil, pkgerror.NewNotFound(msgRestaurantNotFound)
	}
	if err != nil {
		return nil, storeFailure(ctx, err, msgLoadRestaurant, "restaurant_id", restaurantID)
	}

	return item, nil
}

func (u *Usecase) ListMenu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	if blank(restaurantID) {
		return nil, pkgerror.NewBadRequest(msgInvalidRestaurantID)
	}

	items, err := u.store.QueryMenu(ctx, restaurantID)
	if err != nil {
		return nil, storeFailure(ctx, err, msgLoadMenu, "restaurant_id", restaurantID)
	}

	if items == nil {
		items = []entity.MenuItem{}
	}

	return items, nil
}

func (u *Usecase) GetMenuItem(ctx context.Context, restaurantID, itemID string) (entity.MenuItem, error) {
	if blank(restaurantID) || blank(itemID) {
		return nil, pkgerror.NewBadRequest(msgInvalidItemKey)
	}

	item, err := u.store.GetMenuItem(ctx, restaurantID, itemID)
	if errors.Is(err, pkgerror.ErrNotFound) {
		return nil, pkgerror.NewNotFound(msgMenuItemNotFound)
	}
	if err != nil {
		return nil, storeFailure(ctx, err, msgLoadMenuItem, "restaurant_id", restaurantID, "item_id", itemID)
	}

	return item, nil
}

// blank reports whether a key parameter is unusable. Keys are otherwise
// passed to the store exactly as received.
func blank(key string) bool {
	return strings.TrimSpace(key) == ""
}

// storeFailure logs the raw store error and hides it behind msg.
func storeFailure(ctx context.Context, err error, msg string, args ...any) error {
	slog.ErrorContext(ctx, "store operation failed", append(args, "message", msg, "error", err)...)
	return pkgerror.NewInternal(err, msg)
}

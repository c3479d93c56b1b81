package restaurant

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/inbound"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/seed"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/store"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/usecase"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Context context.Context
}

type storage interface {
	usecase.Store
	seed.Writer
}

func New(dep Dependency) (func(context.Context) error, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := newStorage(ctx, dep.Config)
	if err != nil {
		return nil, err
	}

	if path := dep.Config.GetString("seed.path"); path != "" {
		if err := seed.Run(ctx, path, st); err != nil {
			return nil, fmt.Errorf("seed %s: %w", path, err)
		}
	}

	uc := usecase.New(usecase.Dependency{Store: st})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil, nil
}

func newStorage(ctx context.Context, cfg pkgconfig.Config) (storage, error) {
	switch driver := cfg.GetString("store.driver"); driver {
	case DriverMemory:
		return store.NewInMemoryStore(), nil
	case DriverDynamoDB, "":
		client, err := store.NewDynamoClient(ctx, store.DynamoConfig{
			Region:   cfg.GetString("store.dynamodb.region"),
			Endpoint: cfg.GetString("store.dynamodb.endpoint"),
		})
		if err != nil {
			return nil, err
		}

		return store.NewDynamoStore(client, store.Tables{
			Restaurants: cfg.GetString("store.tables.restaurants"),
			Menu:        cfg.GetString("store.tables.menu"),
			Orders:      cfg.GetString("store.tables.orders"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkglog"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path,
		pkgconfig.WithDefault("server.address.http", ":3000"),
		pkgconfig.WithDefault("server.cors.allowed_headers", "Origin, X-Requested-With, Content-Type, Accept"),
		pkgconfig.WithDefault("store.driver", "dynamodb"),
		pkgconfig.WithEnv("store.driver", "STORE_DRIVER"),
		pkgconfig.WithEnv("store.dynamodb.region", "REGION"),
		pkgconfig.WithEnv("store.dynamodb.endpoint", "DYNAMODB_ENDPOINT"),
		pkgconfig.WithEnv("store.tables.restaurants", "RESTAURANTS_TABLE_NAME"),
		pkgconfig.WithEnv("store.tables.menu", "MENU_TABLE_NAME"),
		pkgconfig.WithEnv("store.tables.orders", "ORDERS_TABLE_NAME"),
		pkgconfig.WithEnv("seed.path", "SEED_PATH"),
	)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.SetLevel(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID()
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	allowedHeaders := a.config.GetArray("server.cors.allowed_headers")
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: allowedHeaders,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           withOpenCORS(allowedHeaders, corsHandler.Handler(a.router)),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// withOpenCORS puts the wildcard allow headers on every response. rs/cors only
// writes them when the request carries Origin, and overwrites them when it does.
func withOpenCORS(allowedHeaders []string, next http.Handler) http.Handler {
	allow := strings.Join(allowedHeaders, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		if allow != "" {
			h.Set("Access-Control-Allow-Headers", allow)
		}
		next.ServeHTTP(w, r)
	})
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}

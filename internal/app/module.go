package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/gorestaurant/internal/restaurant"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.restaurant.enabled") {
		closer, err := restaurant.New(restaurant.Dependency{
			Config:  a.config,
			Router:  a.router,
			Context: a.ctx,
		})
		if err != nil {
			slog.Error("failed to init module restaurant", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Restaurant"] = closer
		}
	}
}

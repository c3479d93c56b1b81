package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/entity"
)

// Writer stores seed records. Puts are upserts.
type Writer interface {
	PutRestaurant(ctx context.Context, r entity.Restaurant) error
	PutMenuItem(ctx context.Context, m entity.MenuItem) error
}

// Data is the content of a seed file.
type Data struct {
	Restaurants []entity.Restaurant `json:"restaurants"`
	Menu        []entity.MenuItem   `json:"menu"`
}

var errTrailingData = errors.New("unexpected data after the seed object")

// Decode reads one JSON seed object. Numbers are kept as json.Number so
// large IDs and prices reach the store digit for digit.
func Decode(r io.Reader) (Data, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var data Data
	if err := dec.Decode(&data); err != nil {
		return Data{}, fmt.Errorf("decode seed data: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Data{}, fmt.Errorf("decode seed data: %w", errTrailingData)
	}
	return data, nil
}

// LoadFile reads seed data from a JSON file.
func LoadFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(f)
}

// Apply writes restaurants and menu items concurrently and returns every
// failure joined together.
func Apply(ctx context.Context, w Writer, data Data) error {
	runner := pkgroutine.NewManager(2)

	runner.Go(ctx, func(ctx context.Context) error {
		for i, r := range data.Restaurants {
			if err := w.PutRestaurant(ctx, r); err != nil {
				return fmt.Errorf("restaurant #%d (id=%q): %w", i, r.ID(), err)
			}
		}
		return nil
	})

	runner.Go(ctx, func(ctx context.Context) error {
		for i, m := range data.Menu {
			if err := w.PutMenuItem(ctx, m); err != nil {
				return fmt.Errorf("menu item #%d (restaurant_id=%q, id=%q): %w", i, m.RestaurantID(), m.ID(), err)
			}
		}
		return nil
	})

	return runner.Wait()
}

// Run loads the seed file at path and writes it through w.
func Run(ctx context.Context, path string, w Writer) error {
	data, err := LoadFile(path)
	if err != nil {
		return err
	}

	if err := Apply(ctx, w, data); err != nil {
		return err
	}

	slog.InfoContext(ctx, "seed data loaded",
		"path", path,
		"restaurants", len(data.Restaurants),
		"menu_items", len(data.Menu),
	)

	return nil
}

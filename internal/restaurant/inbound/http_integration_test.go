package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"testing"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkguid"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/entity"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/store"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/usecase"
)

func newRouter(t *testing.T, s usecase.Store) *pkgrouter.Router {
	t.Helper()
	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, usecase.New(usecase.Dependency{Store: s}))
	return router
}

func seededStore(t *testing.T) *store.InMemoryStore {
	t.Helper()
	ctx := context.Background()
	mem := store.NewInMemoryStore()
	if err := mem.PutRestaurant(ctx, entity.Restaurant{"id": "r1", "name": "Pizza Place"}); err != nil {
		t.Fatalf("put restaurant: %v", err)
	}
	if err := mem.PutRestaurant(ctx, entity.Restaurant{"id": "r3", "name": "Empty Kitchen"}); err != nil {
		t.Fatalf("put restaurant: %v", err)
	}
	if err := mem.PutMenuItem(ctx, entity.MenuItem{"restaurant_id": "r1", "id": "m1", "name": "Margherita", "price": 9.5}); err != nil {
		t.Fatalf("put menu item: %v", err)
	}
	return mem
}

func get(t *testing.T, router http.Handler, target string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("%s: unexpected content type %q", target, ct)
	}
	if out != nil {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("%s: decode body: %v", target, err)
		}
	}
	return rec.Code
}

type message struct {
	Message string `json:"message"`
}

func TestRestaurantScenario(t *testing.T) {
	router := newRouter(t, seededStore(t))

	var restaurants []map[string]any
	if code := get(t, router, "/items/restaurants", &restaurants); code != http.StatusOK {
		t.Fatalf("list restaurants status = %d", code)
	}
	ids := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r["id"].(string))
	}
	sort.Strings(ids)
	if !reflect.DeepEqual(ids, []string{"r1", "r3"}) {
		t.Fatalf("unexpected restaurant ids: %v", ids)
	}

	var restaurant map[string]any
	if code := get(t, router, "/items/restaurants/r1", &restaurant); code != http.StatusOK {
		t.Fatalf("get restaurant status = %d", code)
	}
	if !reflect.DeepEqual(restaurant, map[string]any{"id": "r1", "name": "Pizza Place"}) {
		t.Fatalf("unexpected restaurant: %v", restaurant)
	}

	wantItem := map[string]any{"restaurant_id": "r1", "id": "m1", "name": "Margherita", "price": 9.5}

	var menu []map[string]any
	if code := get(t, router, "/items/restaurants/r1/menu", &menu); code != http.StatusOK {
		t.Fatalf("list menu status = %d", code)
	}
	if !reflect.DeepEqual(menu, []map[string]any{wantItem}) {
		t.Fatalf("unexpected menu: %v", menu)
	}

	var item map[string]any
	if code := get(t, router, "/items/restaurants/r1/menu/m1", &item); code != http.StatusOK {
		t.Fatalf("get menu item status = %d", code)
	}
	if !reflect.DeepEqual(item, wantItem) {
		t.Fatalf("unexpected menu item: %v", item)
	}

	var msg message
	if code := get(t, router, "/items/restaurants/r2", &msg); code != http.StatusNotFound {
		t.Fatalf("missing restaurant status = %d", code)
	}
	if msg.Message != "The restaurant does not exist" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}

	msg = message{}
	if code := get(t, router, "/items/restaurants/r1/menu/mX", &msg); code != http.StatusNotFound {
		t.Fatalf("missing menu item status = %d", code)
	}
	if msg.Message != "The menu item does not exist" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}
}

func TestEmptyMenuIsEmptyArray(t *testing.T) {
	router := newRouter(t, seededStore(t))

	req := httptest.NewRequest(http.MethodGet, "/items/restaurants/r3/menu", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("body = %q, want []", got)
	}
}

type brokenStore struct{}

var errStoreDown = errors.New("store is down")

func (brokenStore) ScanRestaurants(context.Context) ([]entity.Restaurant, error) {
	return nil, errStoreDown
}

func (brokenStore) GetRestaurant(context.Context, string) (entity.Restaurant, error) {
	return nil, errStoreDown
}

func (brokenStore) QueryMenu(context.Context, string) ([]entity.MenuItem, error) {
	return nil, errStoreDown
}

func (brokenStore) GetMenuItem(context.Context, string, string) (entity.MenuItem, error) {
	return nil, errStoreDown
}

func TestStoreFailureIs500(t *testing.T) {
	router := newRouter(t, brokenStore{})

	cases := map[string]string{
		"/items/restaurants":            "Could not load restaurants",
		"/items/restaurants/r1":         "Could not load restaurant",
		"/items/restaurants/r1/menu":    "Could not load restaurant menu",
		"/items/restaurants/r1/menu/m1": "Could not load menu item",
	}

	for target, want := range cases {
		var msg message
		if code := get(t, router, target, &msg); code != http.StatusInternalServerError {
			t.Fatalf("%s: status = %d, want 500", target, code)
		}
		if msg.Message != want {
			t.Fatalf("%s: message = %q, want %q", target, msg.Message, want)
		}
	}
}

func TestEndpointsRejectMissingParams(t *testing.T) {
	end := &HTTPEndpoint{uc: usecase.New(usecase.Dependency{Store: brokenStore{}})}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.Background()

	handlers := map[string]pkgrouter.Handler{
		"Restaurant": end.Restaurant,
		"Menu":       end.Menu,
		"MenuItem":   end.MenuItem,
	}

	for name, h := range handlers {
		_, err := h(ctx, req)

		var perr *pkgerror.Error
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected *pkgerror.Error, got %v", name, err)
		}
		if perr.StatusCode() != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", name, perr.StatusCode())
		}
		if errors.Is(err, errStoreDown) {
			t.Fatalf("%s: store must not be called on invalid input", name)
		}
	}
}

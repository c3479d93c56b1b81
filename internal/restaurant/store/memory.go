package store

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/shandysiswandi/gorestaurant/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gorestaurant/internal/restaurant/entity"
)

var errMissingKey = errors.New("record is missing its key attributes")

type InMemoryStore struct {
	mu          sync.RWMutex
	restaurants map[string]entity.Restaurant
	order       []string
	menu        map[string]*menuPartition
}

type menuPartition struct {
	items map[string]entity.MenuItem
	order []string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		restaurants: make(map[string]entity.Restaurant),
		menu:        make(map[string]*menuPartition),
	}
}

func (s *InMemoryStore) ScanRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.Restaurant, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, maps.Clone(s.restaurants[id]))
	}

	return items, nil
}

func (s *InMemoryStore) GetRestaurant(ctx context.Context, id string) (entity.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.restaurants[id]
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	return maps.Clone(rec), nil
}

func (s *InMemoryStore) QueryMenu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part, ok := s.menu[restaurantID]
	if !ok {
		return []entity.MenuItem{}, nil
	}

	items := make([]entity.MenuItem, 0, len(part.order))
	for _, id := range part.order {
		items = append(items, maps.Clone(part.items[id]))
	}

	return items, nil
}

func (s *InMemoryStore) GetMenuItem(ctx context.Context, restaurantID, itemID string) (entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part, ok := s.menu[restaurantID]
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	rec, ok := part.items[itemID]
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	return maps.Clone(rec), nil
}

// PutRestaurant inserts or replaces a restaurant.
func (s *InMemoryStore) PutRestaurant(ctx context.Context, r entity.Restaurant) error {
	id := r.ID()
	if id == "" {
		return errMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.restaurants[id]; !exists {
		s.order = append(s.order, id)
	}
	s.restaurants[id] = maps.Clone(r)

	return nil
}

// PutMenuItem inserts or replaces a menu item.
func (s *InMemoryStore) PutMenuItem(ctx context.Context, m entity.MenuItem) error {
	restaurantID, id := m.RestaurantID(), m.ID()
	if restaurantID == "" || id == "" {
		return errMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	part, ok := s.menu[restaurantID]
	if !ok {
		part = &menuPartition{items: make(map[string]entity.MenuItem)}
		s.menu[restaurantID] = part
	}
	if _, exists := part.items[id]; !exists {
		part.order = append(part.order, id)
	}
	part.items[id] = maps.Clone(m)

	return nil
}

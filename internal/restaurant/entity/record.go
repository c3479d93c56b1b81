package entity

// Key attribute names shared by the stored records.
const (
	AttrID           = "id"
	AttrRestaurantID = "restaurant_id"
)

// Restaurant is a stored restaurant record. Only "id" has meaning to this
// service; every other attribute is passed through as stored.
type Restaurant map[string]any

// ID returns the restaurant key, or "" when it is missing or not a string.
func (r Restaurant) ID() string {
	return stringAttr(r, AttrID)
}

// MenuItem is a stored menu item record keyed by (restaurant_id, id).
type MenuItem map[string]any

// RestaurantID returns the partition key of the item.
func (m MenuItem) RestaurantID() string {
	return stringAttr(m, AttrRestaurantID)
}

// ID returns the sort key of the item.
func (m MenuItem) ID() string {
	return stringAttr(m, AttrID)
}

func stringAttr(rec map[string]any, key string) string {
	v, _ := rec[key].(string)
	return v
}

package usecase

// User-facing messages. Clients match on these, keep them stable.
const (
	msgInvalidRestaurantID = "Invalid restaurant ID"
	msgInvalidItemKey      = "Invalid restaurant or item identifier"
	msgRestaurantNotFound  = "The restaurant does not exist"
	msgMenuItemNotFound    = "The menu item does not exist"
	msgLoadRestaurants     = "Could not load restaurants"
	msgLoadRestaurant      = "Could not load restaurant"
	msgLoadMenu            = "Could not load restaurant menu"
	msgLoadMenuItem        = "Could not load menu item"
)

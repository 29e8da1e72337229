package foodcart

import (
	"growling-tummy/internal/model"
	"growling-tummy/pkg/clock"
)

// Dining options understood by FindByDiningOptions. Anything else is ignored.
const (
	DiningOptionDineIn  = "dine-in"
	DiningOptionToGo    = "to-go"
	DiningOptionTakeout = "takeout"
)

// Dietary preferences understood by FindByDiningOptions. Anything else is ignored.
const (
	DietaryVegan      = "vegan"
	DietaryVegetarian = "vegetarian"
)

// --- UseCase Inputs ---

type FindByTimeInput struct {
	Cuisine string
	Time    string // ISO-8601 timestamp, "15:04" or "3:04 PM"
}

// FindByRatingLocationInput holds optional criteria. A nil or zero Rating
// means no rating filter.
type FindByRatingLocationInput struct {
	Rating   *float64
	Location string
}

// HasRating reports whether a rating filter was supplied.
func (in FindByRatingLocationInput) HasRating() bool {
	return in.Rating != nil && *in.Rating != 0
}

type FindByDiningOptionsInput struct {
	Cuisine           string
	DiningOption      string
	DietaryPreference string
}

// --- UseCase Outputs ---

// FindByTimeOutput is returned with ErrNoOpenCarts as well, so QueryTime can
// still be reported to the user.
type FindByTimeOutput struct {
	QueryTime clock.Minutes
	Carts     []model.FoodCart
}

type FindCartsOutput struct {
	Carts []model.FoodCart
}

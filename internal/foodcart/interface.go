package foodcart

import (
	"context"

	"growling-tummy/internal/model"
)

// UseCase defines the lookup operations over the food-cart dataset.
type UseCase interface {
	// FindByTime returns the carts of a cuisine that are open at a time of day.
	FindByTime(ctx context.Context, input FindByTimeInput) (FindByTimeOutput, error)

	// FindByRatingLocation filters carts by minimum rating and/or location.
	FindByRatingLocation(ctx context.Context, input FindByRatingLocationInput) (FindCartsOutput, error)

	// FindByDiningOptions filters carts by cuisine, dining option and dietary preference.
	FindByDiningOptions(ctx context.Context, input FindByDiningOptionsInput) (FindCartsOutput, error)

	// List returns every cart in dataset order.
	List(ctx context.Context) ([]model.FoodCart, error)
}

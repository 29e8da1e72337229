package foodcart

import "errors"

// Domain-specific errors for the foodcart package.
var (
	ErrMissingCuisineOrTime    = errors.New("cuisine and time are required")
	ErrMissingRatingOrLocation = errors.New("rating or location is required")
	ErrCuisineNotFound         = errors.New("no carts serve the cuisine")
	ErrInvalidTime             = errors.New("query time could not be parsed")
	ErrNoOpenCarts             = errors.New("no carts open at the requested time")
	ErrNoMatch                 = errors.New("no carts match the criteria")
)

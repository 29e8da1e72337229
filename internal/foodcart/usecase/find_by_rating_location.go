package usecase

import (
	"context"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository"
)

// FindByRatingLocation keeps carts rated at least input.Rating and whose
// location sorts at or after input.Location. At least one must be given.
func (uc *implUseCase) FindByRatingLocation(ctx context.Context, input foodcart.FindByRatingLocationInput) (foodcart.FindCartsOutput, error) {
	if !input.HasRating() && input.Location == "" {
		return foodcart.FindCartsOutput{}, foodcart.ErrMissingRatingOrLocation
	}

	opt := repository.ListCartsOptions{LocationAtLeast: input.Location}
	if input.HasRating() {
		opt.MinRating = input.Rating
	}

	carts, err := uc.repo.ListCarts(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindByRatingLocation ListCarts: %v", err)
		return foodcart.FindCartsOutput{}, err
	}
	if len(carts) == 0 {
		return foodcart.FindCartsOutput{}, foodcart.ErrNoMatch
	}

	return foodcart.FindCartsOutput{Carts: carts}, nil
}

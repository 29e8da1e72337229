package usecase

import (
	"context"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository"
)

// FindByDiningOptions applies each supplied filter conjunctively. Unknown
// dining options and dietary preferences do not filter.
func (uc *implUseCase) FindByDiningOptions(ctx context.Context, input foodcart.FindByDiningOptionsInput) (foodcart.FindCartsOutput, error) {
	opt := repository.ListCartsOptions{Cuisine: input.Cuisine}
	uc.applyDiningOption(&opt, input.DiningOption)
	uc.applyDietaryPreference(&opt, input.DietaryPreference)

	carts, err := uc.repo.ListCarts(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindByDiningOptions ListCarts: %v", err)
		return foodcart.FindCartsOutput{}, err
	}
	if len(carts) == 0 {
		return foodcart.FindCartsOutput{}, foodcart.ErrNoMatch
	}

	return foodcart.FindCartsOutput{Carts: carts}, nil
}

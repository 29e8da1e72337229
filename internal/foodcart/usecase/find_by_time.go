package usecase

import (
	"context"
	"fmt"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository"
	"growling-tummy/internal/model"
	"growling-tummy/pkg/clock"
)

// FindByTime returns the carts serving input.Cuisine that are open at the
// time of day in input.Time. Opening hours are compared inclusively and do
// not wrap past midnight.
func (uc *implUseCase) FindByTime(ctx context.Context, input foodcart.FindByTimeInput) (foodcart.FindByTimeOutput, error) {
	if input.Cuisine == "" || input.Time == "" {
		return foodcart.FindByTimeOutput{}, foodcart.ErrMissingCuisineOrTime
	}

	carts, err := uc.repo.ListCarts(ctx, repository.ListCartsOptions{Cuisine: input.Cuisine})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindByTime ListCarts: %v", err)
		return foodcart.FindByTimeOutput{}, err
	}
	if len(carts) == 0 {
		return foodcart.FindByTimeOutput{}, foodcart.ErrCuisineNotFound
	}

	at, err := clock.ParseQueryTime(input.Time)
	if err != nil {
		uc.l.Warnf(ctx, "uc.FindByTime ParseQueryTime: %v", err)
		return foodcart.FindByTimeOutput{}, fmt.Errorf("%w: %w", foodcart.ErrInvalidTime, err)
	}

	open := make([]model.FoodCart, 0, len(carts))
	for _, c := range carts {
		span, err := clock.ParseSpan(c.Hours)
		if err != nil {
			uc.l.Warnf(ctx, "uc.FindByTime: skipping %q: %v", c.Name, err)
			continue
		}
		if span.Contains(at) {
			open = append(open, c)
		}
	}

	output := foodcart.FindByTimeOutput{QueryTime: at, Carts: open}
	if len(open) == 0 {
		return output, foodcart.ErrNoOpenCarts
	}
	return output, nil
}

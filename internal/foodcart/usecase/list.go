package usecase

import (
	"context"

	"growling-tummy/internal/foodcart/repository"
	"growling-tummy/internal/model"
)

// List returns the whole dataset.
func (uc *implUseCase) List(ctx context.Context) ([]model.FoodCart, error) {
	carts, err := uc.repo.ListCarts(ctx, repository.ListCartsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCarts: %v", err)
		return nil, err
	}
	return carts, nil
}

package repository

import (
	"context"

	"growling-tummy/internal/model"
)

// Repository is the composed interface for the food-cart data store.
type Repository interface {
	CartRepository
}

// CartRepository defines read access to the FoodCart dataset. Returned carts
// are copies in dataset order.
type CartRepository interface {
	ListCarts(ctx context.Context, opt ListCartsOptions) ([]model.FoodCart, error)
}

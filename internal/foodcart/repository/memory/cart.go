package memory

import (
	"context"
	"strings"

	"growling-tummy/internal/foodcart/repository"
	"growling-tummy/internal/model"
)

// ListCarts returns copies of the carts matching opt, in dataset order.
func (r *implRepository) ListCarts(ctx context.Context, opt repository.ListCartsOptions) ([]model.FoodCart, error) {
	out := make([]model.FoodCart, 0, len(r.carts))
	for _, c := range r.carts {
		if matches(c, opt) {
			out = append(out, c.Clone())
		}
	}

	r.l.Debugf(ctx, "repository.memory.ListCarts: %d of %d carts matched", len(out), len(r.carts))
	return out, nil
}

func matches(c model.FoodCart, opt repository.ListCartsOptions) bool {
	if opt.Cuisine != "" && !strings.EqualFold(c.Cuisine, opt.Cuisine) {
		return false
	}
	if opt.MinRating != nil && c.Rating < *opt.MinRating {
		return false
	}
	// Plain string ordering, not a proximity or substring match.
	if opt.LocationAtLeast != "" && c.Location < opt.LocationAtLeast {
		return false
	}
	if opt.RequireDineIn && !c.DineIn {
		return false
	}
	if opt.RequireTakeOut && !c.TakeOut {
		return false
	}
	if opt.RequireVegan && !c.Vegan {
		return false
	}
	if opt.RequireVegetarian && !c.Vegetarian {
		return false
	}
	return true
}

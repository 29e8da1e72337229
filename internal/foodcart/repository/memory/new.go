package memory

import (
	"growling-tummy/internal/foodcart/repository"
	"growling-tummy/internal/model"
	"growling-tummy/pkg/log"
)

type implRepository struct {
	carts []model.FoodCart
	l     log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository over the built-in dataset.
func New(l log.Logger) *implRepository {
	return NewWithCarts(Seed(), l)
}

// NewWithCarts creates a repository over the given carts. The slice is
// copied; later changes by the caller are not observed.
func NewWithCarts(carts []model.FoodCart, l log.Logger) *implRepository {
	own := make([]model.FoodCart, len(carts))
	for i, c := range carts {
		own[i] = c.Clone()
	}
	return &implRepository{
		carts: own,
		l:     l,
	}
}

package usecase_test

import (
	"context"
	"errors"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository"
	"growling-tummy/internal/foodcart/repository/memory"
	"growling-tummy/internal/foodcart/usecase"
	"growling-tummy/internal/model"
	"growling-tummy/pkg/log"
)

var errRepoDown = errors.New("repository down")

// mockRepo records the options it was called with and returns canned results.
type mockRepo struct {
	lastOpt repository.ListCartsOptions
	carts   []model.FoodCart
	err     error
}

func (m *mockRepo) ListCarts(ctx context.Context, opt repository.ListCartsOptions) ([]model.FoodCart, error) {
	m.lastOpt = opt
	return m.carts, m.err
}

func newUseCase() foodcart.UseCase {
	return usecase.New(memory.New(log.NewNop()), log.NewNop())
}

func names(carts []model.FoodCart) []string {
	out := make([]string, len(carts))
	for i, c := range carts {
		out[i] = c.Name
	}
	return out
}

func ptr(f float64) *float64 { return &f }

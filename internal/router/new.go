package router

import (
	"context"

	"growling-tummy/internal/foodcart"
	"growling-tummy/pkg/log"
)

// Router turns a resolved intent and its parameters into a reply.
type Router interface {
	Route(ctx context.Context, req Request) Reply
}

// QueryRouter dispatches intents to the food-cart use case.
type QueryRouter struct {
	uc foodcart.UseCase
	l  log.Logger
}

var _ Router = (*QueryRouter)(nil)

// New creates a new QueryRouter.
func New(uc foodcart.UseCase, l log.Logger) *QueryRouter {
	return &QueryRouter{
		uc: uc,
		l:  l,
	}
}

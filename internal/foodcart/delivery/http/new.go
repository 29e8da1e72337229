package http

import (
	"github.com/gin-gonic/gin"

	"growling-tummy/internal/foodcart"
	"growling-tummy/pkg/log"
)

// Handler is the public interface for the food-cart HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc foodcart.UseCase
}

// New creates a new HTTP handler for the food-cart domain.
func New(l log.Logger, uc foodcart.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

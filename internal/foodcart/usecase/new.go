package usecase

import (
	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository"
	"growling-tummy/pkg/log"
)

// implUseCase is the private implementation of foodcart.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ foodcart.UseCase = (*implUseCase)(nil)

// New creates a new foodcart UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

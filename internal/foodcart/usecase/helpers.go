package usecase

import (
	"strings"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository"
)

func (uc *implUseCase) applyDiningOption(opt *repository.ListCartsOptions, diningOption string) {
	switch strings.ToLower(diningOption) {
	case foodcart.DiningOptionDineIn:
		opt.RequireDineIn = true
	case foodcart.DiningOptionToGo, foodcart.DiningOptionTakeout:
		opt.RequireTakeOut = true
	}
}

func (uc *implUseCase) applyDietaryPreference(opt *repository.ListCartsOptions, preference string) {
	switch strings.ToLower(preference) {
	case foodcart.DietaryVegan:
		opt.RequireVegan = true
	case foodcart.DietaryVegetarian:
		opt.RequireVegetarian = true
	}
}

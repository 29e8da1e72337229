package http

import (
	"strings"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Cuisine           string `form:"cuisine"            binding:"max=64"`
	DiningOption      string `form:"dining_option"      binding:"omitempty,oneof=dine-in to-go takeout"`
	DietaryPreference string `form:"dietary_preference" binding:"omitempty,oneof=vegan vegetarian"`
}

func (r *listReq) validate() error {
	r.Cuisine = strings.TrimSpace(r.Cuisine)
	return nil
}

func (r listReq) empty() bool {
	return r.Cuisine == "" && r.DiningOption == "" && r.DietaryPreference == ""
}

func (r listReq) toInput() foodcart.FindByDiningOptionsInput {
	return foodcart.FindByDiningOptionsInput{
		Cuisine:           r.Cuisine,
		DiningOption:      r.DiningOption,
		DietaryPreference: r.DietaryPreference,
	}
}

// --- Response DTOs ---

type cartResp struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Hours        string   `json:"hours"`
	DineIn       bool     `json:"dine_in"`
	TakeOut      bool     `json:"take_out"`
	Vegan        bool     `json:"vegan"`
	Vegetarian   bool     `json:"vegetarian"`
	PopularItems []string `json:"popular_items"`
}

type listResp struct {
	Carts []cartResp `json:"carts"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(o foodcart.FindCartsOutput) listResp {
	carts := make([]cartResp, 0, len(o.Carts))
	for _, c := range o.Carts {
		carts = append(carts, newCartResp(c))
	}
	return listResp{Carts: carts, Total: len(carts)}
}

func newCartResp(c model.FoodCart) cartResp {
	return cartResp{
		Name:         c.Name,
		Cuisine:      c.Cuisine,
		Location:     c.Location,
		Rating:       c.Rating,
		Hours:        c.Hours,
		DineIn:       c.DineIn,
		TakeOut:      c.TakeOut,
		Vegan:        c.Vegan,
		Vegetarian:   c.Vegetarian,
		PopularItems: c.PopularItems,
	}
}

package router

import (
	"fmt"
	"strconv"
	"strings"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/model"
)

func presentOpenCarts(cuisine string, out foodcart.FindByTimeOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, FmtOpenCartsHeader, cuisine, out.QueryTime)
	for _, c := range out.Carts {
		fmt.Fprintf(&b, FmtOpenCart, c.Name, c.Hours)
	}
	return b.String()
}

func presentRatedCarts(carts []model.FoodCart) string {
	var b strings.Builder
	b.WriteString(MsgCriteriaHeader)
	for _, c := range carts {
		fmt.Fprintf(&b, FmtRatedCart, c.Name, formatRating(c.Rating), c.Location)
	}
	return b.String()
}

func presentCartDetails(carts []model.FoodCart) string {
	var b strings.Builder
	b.WriteString(MsgPreferencesHeader)
	for _, c := range carts {
		fmt.Fprintf(&b, FmtCartHeadline, c.Name, c.Cuisine)
		fmt.Fprintf(&b, FmtPopularItems, strings.Join(c.PopularItems, ", "))
		fmt.Fprintf(&b, FmtOptions, diningLabel(c))
		fmt.Fprintf(&b, FmtDietary, dietaryLabel(c))
	}
	return b.String()
}

func diningLabel(c model.FoodCart) string {
	if c.DineIn {
		return LabelDineIn
	}
	return LabelTakeOutOnly
}

func dietaryLabel(c model.FoodCart) string {
	labels := make([]string, 0, 2)
	if c.Vegan {
		labels = append(labels, LabelVegan)
	}
	if c.Vegetarian {
		labels = append(labels, LabelVegetarian)
	}
	if len(labels) == 0 {
		return LabelStandardMenu
	}
	return strings.Join(labels, ", ")
}

// formatRating prints the shortest exact decimal form, so 4.5 stays "4.5"
// and 4 prints as "4".
func formatRating(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

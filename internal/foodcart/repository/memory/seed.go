package memory

import "growling-tummy/internal/model"

// Seed returns a fresh copy of the built-in food-cart dataset.
func Seed() []model.FoodCart {
	return []model.FoodCart{
		{
			Name:         "Thai Delight",
			Cuisine:      "Thai",
			Location:     "downtown",
			Rating:       4.5,
			Hours:        "11:00 AM - 9:00 PM",
			DineIn:       true,
			TakeOut:      true,
			Vegan:        true,
			Vegetarian:   true,
			PopularItems: []string{"Pad Thai", "Green Curry", "Mango Sticky Rice"},
		},
		{
			Name:         "Taco Heaven",
			Cuisine:      "Mexican",
			Location:     "Pioneer Square",
			Rating:       4.8,
			Hours:        "10:00 AM - 10:00 PM",
			DineIn:       false,
			TakeOut:      true,
			Vegan:        false,
			Vegetarian:   true,
			PopularItems: []string{"Street Tacos", "Burrito Bowl", "Quesadillas"},
		},
		{
			Name:         "Spice of India",
			Cuisine:      "Indian",
			Location:     "downtown",
			Rating:       4.7,
			Hours:        "11:30 AM - 8:30 PM",
			DineIn:       true,
			TakeOut:      true,
			Vegan:        true,
			Vegetarian:   true,
			PopularItems: []string{"Butter Chicken", "Palak Paneer", "Chana Masala"},
		},
		{
			Name:         "Dragon Wok",
			Cuisine:      "Chinese",
			Location:     "Chinatown",
			Rating:       4.6,
			Hours:        "11:00 AM - 11:00 PM",
			DineIn:       true,
			TakeOut:      true,
			Vegan:        false,
			Vegetarian:   true,
			PopularItems: []string{"Kung Pao Chicken", "Vegetable Fried Rice", "Dumplings"},
		},
	}
}

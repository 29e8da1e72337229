package model

// FoodCart is one vendor listing. Records are created once at startup and
// never mutated.
type FoodCart struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Hours        string   `json:"hours"` // "11:00 AM - 9:00 PM"
	DineIn       bool     `json:"dine_in"`
	TakeOut      bool     `json:"take_out"`
	Vegan        bool     `json:"vegan"`
	Vegetarian   bool     `json:"vegetarian"`
	PopularItems []string `json:"popular_items"`
}

// Clone returns a deep copy of c.
func (c FoodCart) Clone() FoodCart {
	out := c
	out.PopularItems = append([]string(nil), c.PopularItems...)
	return out
}

package repository

// ListCartsOptions holds filter parameters for listing carts.
// All set fields are applied as AND conditions; zero values do not filter.
type ListCartsOptions struct {
	// Cuisine matches case-insensitively.
	Cuisine string

	// MinRating keeps carts with Rating >= *MinRating.
	MinRating *float64

	// LocationAtLeast keeps carts whose Location sorts at or after this
	// value in plain byte-wise string order.
	LocationAtLeast string

	RequireDineIn     bool
	RequireTakeOut    bool
	RequireVegan      bool
	RequireVegetarian bool
}

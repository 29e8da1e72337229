package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growling-tummy/internal/router"
)

func TestDecodeParams(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want router.Params
	}{
		{
			name: "Empty body",
			raw:  "",
			want: router.Params{},
		},
		{
			name: "Null",
			raw:  "null",
			want: router.Params{},
		},
		{
			name: "Find by time",
			raw:  `{"cuisine": "Thai", "time": "2025-02-21T10:00:00-08:00"}`,
			want: router.Params{Cuisine: "Thai", Time: "2025-02-21T10:00:00-08:00"},
		},
		{
			name: "Unfilled Dialogflow parameters are empty strings",
			raw:  `{"cuisine": "", "time": "", "rating": "", "location": ""}`,
			want: router.Params{},
		},
		{
			name: "Numeric rating",
			raw:  `{"rating": 4.6}`,
			want: router.Params{Rating: ptr(4.6)},
		},
		{
			name: "String rating",
			raw:  `{"rating": "4.5"}`,
			want: router.Params{Rating: ptr(4.5)},
		},
		{
			name: "Non-numeric rating is dropped",
			raw:  `{"rating": "great"}`,
			want: router.Params{},
		},
		{
			name: "Location object uses city",
			raw:  `{"location": {"city": "Portland", "country": "USA"}}`,
			want: router.Params{Location: "Portland"},
		},
		{
			name: "Location object without city",
			raw:  `{"location": {"city": "", "street-address": "SW 5th Ave"}}`,
			want: router.Params{Location: "SW 5th Ave"},
		},
		{
			name: "Location string",
			raw:  `{"location": "downtown"}`,
			want: router.Params{Location: "downtown"},
		},
		{
			name: "List parameter takes first entry",
			raw:  `{"cuisine": ["", "Indian", "Thai"]}`,
			want: router.Params{Cuisine: "Indian"},
		},
		{
			name: "Key spellings",
			raw:  `{"dining_option": "dine-in", "DietaryPreference": "vegan", "CuisineType": "Indian"}`,
			want: router.Params{DiningOption: "dine-in", DietaryPreference: "vegan", Cuisine: "Indian"},
		},
		{
			name: "Empty alias does not clear a filled key",
			raw:  `{"location": "downtown", "city": "", "cuisine": "Thai", "cuisineType": "", "dietaryPreference": "vegan", "diet": ""}`,
			want: router.Params{Location: "downtown", Cuisine: "Thai", DietaryPreference: "vegan"},
		},
		{
			name: "Alias fills an empty key",
			raw:  `{"location": "", "city": "Portland", "diet": "vegetarian"}`,
			want: router.Params{Location: "Portland", DietaryPreference: "vegetarian"},
		},
		{
			name: "Primary key wins over a filled alias",
			raw:  `{"city": "Seattle", "location": "downtown", "cuisineType": "Indian", "cuisine": "Thai"}`,
			want: router.Params{Location: "downtown", Cuisine: "Thai"},
		},
		{
			name: "Unknown keys and odd shapes are ignored",
			raw:  `{"mood": "hungry", "time": 1400, "cuisine": {"name": "Thai"}}`,
			want: router.Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := router.DecodeParams([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeParamsStable(t *testing.T) {
	raw := []byte(`{"location": "downtown", "city": "", "rating": "", "Rating": 4.5}`)
	want := router.Params{Location: "downtown", Rating: ptr(4.5)}

	for i := 0; i < 200; i++ {
		got, err := router.DecodeParams(raw)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDecodeParamsMalformed(t *testing.T) {
	for _, raw := range []string{`{"cuisine": `, `["Thai"]`, `"Thai"`} {
		_, err := router.DecodeParams([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestParamsFromSlots(t *testing.T) {
	got := router.ParamsFromSlots(map[string]string{
		"Time":              "14:00",
		"CuisineType":       "Mexican",
		"Rating":            "4.5",
		"Location":          " ",
		"DiningOption":      "to-go",
		"DietaryPreference": "",
	})

	assert.Equal(t, router.Params{
		Cuisine:      "Mexican",
		Time:         "14:00",
		Rating:       ptr(4.5),
		DiningOption: "to-go",
	}, got)
}

func TestParamsFromSlotsAliases(t *testing.T) {
	got := router.ParamsFromSlots(map[string]string{
		"Cuisine":     "",
		"CuisineType": "Thai",
		"Location":    "downtown",
		"City":        "Seattle",
	})

	assert.Equal(t, router.Params{Cuisine: "Thai", Location: "downtown"}, got)
}

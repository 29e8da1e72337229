package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"growling-tummy/internal/foodcart"
)

// Params is the typed form of the parameter mapping extracted by the NLU
// platform. Empty strings and a nil Rating mean "not supplied".
type Params struct {
	Cuisine           string   `json:"cuisine,omitempty"`
	Time              string   `json:"time,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
	Location          string   `json:"location,omitempty"`
	DiningOption      string   `json:"diningOption,omitempty"`
	DietaryPreference string   `json:"dietaryPreference,omitempty"`
}

// sysLocationFields are the @sys.location fields tried in order.
var sysLocationFields = []string{"city", "business-name", "street-address", "subadmin-area", "admin-area", "country"}

// Keys filling each field, most specific first. The first non-empty value wins.
var (
	cuisineKeys           = []string{"cuisine", "cuisinetype"}
	timeKeys              = []string{"time"}
	ratingKeys            = []string{"rating"}
	locationKeys          = []string{"location", "city"}
	diningOptionKeys      = []string{"diningoption"}
	dietaryPreferenceKeys = []string{"dietarypreference", "diet"}
)

// DecodeParams decodes a JSON parameter object. Individual values of an
// unexpected shape are dropped; only a malformed object is an error.
func DecodeParams(raw []byte) (Params, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Params{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Params{}, fmt.Errorf("decode params: %w", err)
	}
	return newParamValues(fields).params(), nil
}

// ParamsFromSlots builds Params from plain string slot values, matching slot
// names case-insensitively ("CuisineType" fills Cuisine).
func ParamsFromSlots(slots map[string]string) Params {
	fields := make(map[string]json.RawMessage, len(slots))
	for name, value := range slots {
		raw, err := json.Marshal(value)
		if err != nil {
			continue
		}
		fields[name] = raw
	}
	return newParamValues(fields).params()
}

// paramValues groups raw values by normalized key. Raw keys sharing a
// normalized form keep their sorted order.
type paramValues map[string][]json.RawMessage

func newParamValues(fields map[string]json.RawMessage) paramValues {
	values := make(paramValues, len(fields))
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		nk := normalizeKey(key)
		values[nk] = append(values[nk], fields[key])
	}
	return values
}

func (v paramValues) params() Params {
	return Params{
		Cuisine:           v.firstString(decodeString, cuisineKeys),
		Time:              v.firstString(decodeString, timeKeys),
		Rating:            v.firstRating(ratingKeys),
		Location:          v.firstString(decodeLocation, locationKeys),
		DiningOption:      v.firstString(decodeString, diningOptionKeys),
		DietaryPreference: v.firstString(decodeString, dietaryPreferenceKeys),
	}
}

func (v paramValues) firstString(decode func(json.RawMessage) string, keys []string) string {
	for _, key := range keys {
		for _, raw := range v[key] {
			if s := decode(raw); s != "" {
				return s
			}
		}
	}
	return ""
}

func (v paramValues) firstRating(keys []string) *float64 {
	for _, key := range keys {
		for _, raw := range v[key] {
			if r := decodeRating(raw); r != nil {
				return r
			}
		}
	}
	return nil
}

func (p Params) toFindByTimeInput() foodcart.FindByTimeInput {
	return foodcart.FindByTimeInput{
		Cuisine: p.Cuisine,
		Time:    p.Time,
	}
}

func (p Params) toFindByRatingLocationInput() foodcart.FindByRatingLocationInput {
	return foodcart.FindByRatingLocationInput{
		Rating:   p.Rating,
		Location: p.Location,
	}
}

func (p Params) toFindByDiningOptionsInput() foodcart.FindByDiningOptionsInput {
	return foodcart.FindByDiningOptionsInput{
		Cuisine:           p.Cuisine,
		DiningOption:      p.DiningOption,
		DietaryPreference: p.DietaryPreference,
	}
}

// normalizeKey lowercases and strips everything but letters, so
// "dining_option", "diningOption" and "Dining-Option" compare equal.
func normalizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	// List parameters: take the first non-empty entry.
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if s := decodeString(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func decodeRating(raw json.RawMessage) *float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	return parseRating(decodeString(raw))
}

func parseRating(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func decodeLocation(raw json.RawMessage) string {
	if s := decodeString(raw); s != "" {
		return s
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	for _, key := range sysLocationFields {
		if value, ok := obj[key]; ok {
			if s := decodeString(value); s != "" {
				return s
			}
		}
	}
	return ""
}

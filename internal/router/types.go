package router

import "strings"

// Intent is the closed set of user goals the router can serve.
type Intent string

const (
	IntentWelcome              Intent = "WELCOME"
	IntentFallback             Intent = "FALLBACK"
	IntentFindByTime           Intent = "FIND_BY_TIME"
	IntentFindByRatingLocation Intent = "FIND_BY_RATING_LOCATION"
	IntentFindByDiningOptions  Intent = "FIND_BY_DINING_OPTIONS"
	IntentHelp                 Intent = "HELP"
	IntentGoodbye              Intent = "GOODBYE"
)

// ParseIntent maps a platform intent name to an Intent. Unknown names map to
// IntentFallback. Intent values themselves are accepted as well.
func ParseIntent(name string) Intent {
	key := strings.ToLower(strings.TrimSpace(name))
	if intent, ok := intentNames[key]; ok {
		return intent
	}
	switch intent := Intent(strings.ToUpper(key)); intent {
	case IntentWelcome, IntentFallback, IntentFindByTime, IntentFindByRatingLocation,
		IntentFindByDiningOptions, IntentHelp, IntentGoodbye:
		return intent
	}
	return IntentFallback
}

// Request is one resolved user turn.
type Request struct {
	Intent Intent
	Params Params
}

// Reply is the ordered list of text lines answering a Request. Transports
// decide how to join them.
type Reply struct {
	Intent     Intent
	Lines      []string
	EndSession bool
}

// Text joins the reply lines with newlines.
func (r Reply) Text() string {
	return strings.Join(r.Lines, "\n")
}

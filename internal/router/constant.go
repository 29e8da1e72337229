package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Platform intent names. Matching is case-insensitive.
var intentNames = map[string]Intent{
	// Dialogflow
	"welcome intent":                      IntentWelcome,
	"default welcome intent":              IntentWelcome,
	"default fallback intent":             IntentFallback,
	"findfoodcartsbytimeintent":           IntentFindByTime,
	"findfoodcartsbyratinglocationintent": IntentFindByRatingLocation,
	"findfoodcartsbydiningoptionsintent":  IntentFindByDiningOptions,
	"help intent":                         IntentHelp,
	"goodbye intent":                      IntentGoodbye,

	// Alexa
	"launchrequest":         IntentWelcome,
	"amazon.fallbackintent": IntentFallback,
	"amazon.helpintent":     IntentHelp,
	"amazon.cancelintent":   IntentGoodbye,
	"amazon.stopintent":     IntentGoodbye,
}

// Fixed replies
const (
	MsgWelcome       = "Hi Welcome!"
	MsgNotUnderstood = "I didn't understand"
	MsgTryAgain      = "I'm sorry, can you try again?"
	MsgHelp          = "You can ask about food carts by cuisine and time, by rating or location, or by dining and dietary options. How can I help?"
	MsgGoodbye       = "Goodbye!"
	MsgTrouble       = "Sorry, I had trouble understanding that. Please try again."
)

// Prompts for missing or unusable parameters
const (
	MsgProvideCuisineAndTime   = "Please provide both cuisine and time."
	MsgProvideRatingOrLocation = "Please provide at least a rating or a location."
	MsgInvalidTime             = "I couldn't understand the time format. Try saying '11 PM' or '14:00'."
)

// Reply templates
const (
	FmtCuisineNotFound = "Sorry, I couldn't find any %s food carts."
	FmtNoOpenCarts     = "Sorry, I couldn't find any %s food carts open at %s."
	FmtOpenCartsHeader = "Here are the %s food carts open at %s:\n"
	FmtOpenCart        = "\n%s - %s"

	MsgNotFoundPrefix = "Sorry, I couldn't find any food carts"
	FmtRatedAbove     = " rated %s or above"
	FmtNear           = " near %s"
	FmtServing        = " serving %s cuisine"
	FmtWithOption     = " with %s option"
	FmtOffering       = " offering %s options"

	MsgCriteriaHeader = "Here are the food carts that match your criteria:\n"
	FmtRatedCart      = "\n%s - %s★ - %s"

	MsgPreferencesHeader = "Here are the food carts that match your preferences:\n"
	FmtCartHeadline      = "\n%s - %s"
	FmtPopularItems      = "\nPopular items: %s"
	FmtOptions           = "\nOptions: %s"
	FmtDietary           = "\nDietary: %s\n"

	LabelDineIn       = "Dine-in available"
	LabelTakeOutOnly  = "Take-out only"
	LabelVegan        = "Vegan"
	LabelVegetarian   = "Vegetarian"
	LabelStandardMenu = "Standard menu"
)

package webhook

// Platforms, used as rate-limit keys and metric labels.
const (
	PlatformDialogflow = "dialogflow"
	PlatformAlexa      = "alexa"
	PlatformREST       = "rest"
)

// Rejection reasons for metrics.WebhookRejected.
const (
	ReasonIPNotAllowed  = "ip_not_allowed"
	ReasonInvalidSecret = "invalid_secret"
	ReasonRateLimited   = "rate_limited"
	ReasonApplicationID = "application_id"
)

const (
	HeaderWebhookSecret = "X-Webhook-Secret"

	// Source is reported back to Dialogflow in every response.
	Source = "growling-tummy"

	AlexaVersion         = "1.0"
	AlexaSpeechPlainText = "PlainText"
	AlexaLaunchRequest   = "LaunchRequest"
	AlexaIntentRequest   = "IntentRequest"
	AlexaSessionEnded    = "SessionEndedRequest"
)

// Log prefixes
const (
	LogPrefixDialogflow = "internal.webhook.HandleDialogflowWebhook"
	LogPrefixAlexa      = "internal.webhook.HandleAlexaWebhook"
	LogPrefixQuery      = "internal.webhook.HandleQuery"
)

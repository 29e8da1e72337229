package webhook

import (
	"encoding/json"

	"growling-tummy/internal/router"
	pkgResponse "growling-tummy/pkg/response"
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret expected in X-Webhook-Secret (optional)
	AllowedIPs      []string // IP or CIDR allowlist (optional)
	RateLimitPerMin int      // Max requests per minute per platform, 0 disables
}

// AlexaConfig controls the Alexa skill endpoint.
type AlexaConfig struct {
	Enabled       bool
	ApplicationID string // Skill ID to accept; empty accepts any
}

// Alexa request envelope. Only the fields the skill reads are modelled.
type AlexaRequestEnvelope struct {
	Version string        `json:"version"`
	Session *AlexaSession `json:"session,omitempty"`
	Context *AlexaContext `json:"context,omitempty"`
	Request AlexaRequest  `json:"request"`
}

type AlexaSession struct {
	New         bool             `json:"new"`
	SessionID   string           `json:"sessionId"`
	Application AlexaApplication `json:"application"`
}

type AlexaApplication struct {
	ApplicationID string `json:"applicationId"`
}

type AlexaContext struct {
	System struct {
		Application AlexaApplication `json:"application"`
	} `json:"System"`
}

type AlexaRequest struct {
	Type      string       `json:"type"`
	RequestID string       `json:"requestId"`
	Timestamp string       `json:"timestamp"`
	Locale    string       `json:"locale"`
	Intent    *AlexaIntent `json:"intent,omitempty"`
	Reason    string       `json:"reason,omitempty"`
}

type AlexaIntent struct {
	Name  string               `json:"name"`
	Slots map[string]AlexaSlot `json:"slots,omitempty"`
}

type AlexaSlot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// applicationID prefers context.System over the session copy.
func (e AlexaRequestEnvelope) applicationID() string {
	if e.Context != nil && e.Context.System.Application.ApplicationID != "" {
		return e.Context.System.Application.ApplicationID
	}
	if e.Session != nil {
		return e.Session.Application.ApplicationID
	}
	return ""
}

func (i AlexaIntent) slotValues() map[string]string {
	values := make(map[string]string, len(i.Slots))
	for key, slot := range i.Slots {
		name := slot.Name
		if name == "" {
			name = key
		}
		values[name] = slot.Value
	}
	return values
}

type AlexaResponseEnvelope struct {
	Version  string        `json:"version"`
	Response AlexaResponse `json:"response"`
}

type AlexaResponse struct {
	OutputSpeech     *AlexaOutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *AlexaReprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool               `json:"shouldEndSession"`
}

type AlexaOutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type AlexaReprompt struct {
	OutputSpeech AlexaOutputSpeech `json:"outputSpeech"`
}

// --- REST query DTOs ---

type queryReq struct {
	Intent     string          `json:"intent" binding:"required"`
	Parameters json.RawMessage `json:"parameters"`
}

// toRequest always returns a routable request. A parameter decoding error is
// returned alongside empty Params.
func (r queryReq) toRequest() (router.Request, error) {
	params, err := router.DecodeParams(r.Parameters)
	if err != nil {
		params = router.Params{}
	}
	return router.Request{Intent: router.ParseIntent(r.Intent), Params: params}, err
}

type queryResp struct {
	Intent   router.Intent        `json:"intent"`
	Lines    []string             `json:"lines"`
	Text     string               `json:"text"`
	ServedAt pkgResponse.DateTime `json:"served_at" swaggertype:"string"`
}

package webhook

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growling-tummy/internal/router"
)

const testSkillID = "amzn1.ask.skill.test"

func alexaBody(requestType, intent string, slots map[string]string) string {
	env := map[string]any{
		"version": "1.0",
		"session": map[string]any{
			"new":         true,
			"sessionId":   "amzn1.echo-api.session.1",
			"application": map[string]string{"applicationId": testSkillID},
		},
		"request": map[string]any{
			"type":      requestType,
			"requestId": "amzn1.echo-api.request.1",
			"locale":    "en-US",
		},
	}
	if intent != "" {
		s := map[string]any{}
		for name, value := range slots {
			s[name] = map[string]string{"name": name, "value": value}
		}
		env["request"].(map[string]any)["intent"] = map[string]any{"name": intent, "slots": s}
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func decodeAlexa(t *testing.T, body []byte) AlexaResponseEnvelope {
	t.Helper()
	var resp AlexaResponseEnvelope
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHandleAlexaWebhook(t *testing.T) {
	t.Run("Launch request welcomes", func(t *testing.T) {
		stub := &stubRouter{}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true}))

		w := post(e, "/webhook/alexa", alexaBody(AlexaLaunchRequest, "", nil), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, router.IntentWelcome, stub.last.Intent)

		resp := decodeAlexa(t, w.Body.Bytes())
		assert.Equal(t, AlexaVersion, resp.Version)
		require.NotNil(t, resp.Response.OutputSpeech)
		assert.Equal(t, AlexaSpeechPlainText, resp.Response.OutputSpeech.Type)
		assert.Equal(t, "ok", resp.Response.OutputSpeech.Text)
		require.NotNil(t, resp.Response.Reprompt)
		assert.False(t, resp.Response.ShouldEndSession)
	})

	t.Run("Intent slots become params", func(t *testing.T) {
		stub := &stubRouter{}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true}))

		w := post(e, "/webhook/alexa", alexaBody(AlexaIntentRequest, "FindFoodCartsByTimeIntent", map[string]string{
			"Time":        "14:00",
			"CuisineType": "Mexican",
		}), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, router.IntentFindByTime, stub.last.Intent)
		assert.Equal(t, router.Params{Cuisine: "Mexican", Time: "14:00"}, stub.last.Params)
	})

	t.Run("Stop ends the session", func(t *testing.T) {
		stub := &stubRouter{reply: router.Reply{Intent: router.IntentGoodbye, Lines: []string{"Goodbye!"}, EndSession: true}}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true}))

		w := post(e, "/webhook/alexa", alexaBody(AlexaIntentRequest, "AMAZON.StopIntent", nil), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, router.IntentGoodbye, stub.last.Intent)

		resp := decodeAlexa(t, w.Body.Bytes())
		assert.True(t, resp.Response.ShouldEndSession)
		assert.Nil(t, resp.Response.Reprompt)
		assert.Equal(t, "Goodbye!", resp.Response.OutputSpeech.Text)
	})

	t.Run("Session ended gets an empty response", func(t *testing.T) {
		stub := &stubRouter{}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true}))

		w := post(e, "/webhook/alexa", alexaBody(AlexaSessionEnded, "", nil), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, stub.calls)

		resp := decodeAlexa(t, w.Body.Bytes())
		assert.Nil(t, resp.Response.OutputSpeech)
	})

	t.Run("Unsupported request type", func(t *testing.T) {
		stub := &stubRouter{}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true}))

		w := post(e, "/webhook/alexa", alexaBody("AudioPlayer.PlaybackStarted", "", nil), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, stub.calls)
	})

	t.Run("Application ID checked", func(t *testing.T) {
		stub := &stubRouter{}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true, ApplicationID: "amzn1.ask.skill.other"}))

		w := post(e, "/webhook/alexa", alexaBody(AlexaLaunchRequest, "", nil), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 0, stub.calls)
	})

	t.Run("Application ID accepted", func(t *testing.T) {
		stub := &stubRouter{}
		e := newTestEngine(newTestHandler(stub, SecurityConfig{}, AlexaConfig{Enabled: true, ApplicationID: testSkillID}))

		w := post(e, "/webhook/alexa", alexaBody(AlexaLaunchRequest, "", nil), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, stub.calls)
	})
}

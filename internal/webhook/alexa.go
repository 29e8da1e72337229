package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"growling-tummy/internal/metrics"
	"growling-tummy/internal/router"
	pkgResponse "growling-tummy/pkg/response"
)

// HandleAlexaWebhook godoc
// @Summary     Alexa skill endpoint
// @Description Answers Alexa LaunchRequest, IntentRequest and SessionEndedRequest envelopes.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       body body AlexaRequestEnvelope true "Alexa request envelope"
// @Success     200 {object} AlexaResponseEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BasicAuth
// @Router      /webhook/alexa [POST]
func (h *Handler) HandleAlexaWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	defer h.observe(c, PlatformAlexa, time.Now())

	if !h.authorize(c, PlatformAlexa) {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "%s: failed to read body: %v", LogPrefixAlexa, err)
		pkgResponse.Error(c, err, nil)
		return
	}
	h.l.Debugf(ctx, "%s: headers=%v body=%s", LogPrefixAlexa, redactedHeaders(c.Request.Header), body)

	var env AlexaRequestEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixAlexa, err)
		pkgResponse.Error(c, fmt.Errorf("%w: %v", ErrInvalidPayload, err), nil)
		return
	}

	if h.alexa.ApplicationID != "" && env.applicationID() != h.alexa.ApplicationID {
		h.l.Warnf(ctx, "%s: %v: got %q", LogPrefixAlexa, ErrApplicationIDMismatch, env.applicationID())
		metrics.WebhookRejected.WithLabelValues(PlatformAlexa, ReasonApplicationID).Inc()
		pkgResponse.Forbidden(c)
		return
	}

	var req router.Request
	switch env.Request.Type {
	case AlexaLaunchRequest:
		req = router.Request{Intent: router.IntentWelcome}
	case AlexaIntentRequest:
		req = router.Request{Intent: router.IntentFallback}
		if env.Request.Intent != nil {
			req = router.Request{
				Intent: router.ParseIntent(env.Request.Intent.Name),
				Params: router.ParamsFromSlots(env.Request.Intent.slotValues()),
			}
		}
	case AlexaSessionEnded:
		h.l.Infof(ctx, "%s: session ended: %s", LogPrefixAlexa, env.Request.Reason)
		c.JSON(http.StatusOK, AlexaResponseEnvelope{
			Version:  AlexaVersion,
			Response: AlexaResponse{ShouldEndSession: true},
		})
		return
	default:
		h.l.Warnf(ctx, "%s: %v: %q", LogPrefixAlexa, ErrUnsupportedRequestType, env.Request.Type)
		pkgResponse.Error(c, ErrUnsupportedRequestType, nil)
		return
	}

	reply := h.router.Route(ctx, req)
	c.JSON(http.StatusOK, newAlexaResponse(reply))
}

// newAlexaResponse speaks the reply. Open sessions repeat it as the reprompt.
func newAlexaResponse(reply router.Reply) AlexaResponseEnvelope {
	speech := AlexaOutputSpeech{Type: AlexaSpeechPlainText, Text: reply.Text()}

	resp := AlexaResponse{
		OutputSpeech:     &speech,
		ShouldEndSession: reply.EndSession,
	}
	if !reply.EndSession {
		resp.Reprompt = &AlexaReprompt{OutputSpeech: speech}
	}

	return AlexaResponseEnvelope{Version: AlexaVersion, Response: resp}
}

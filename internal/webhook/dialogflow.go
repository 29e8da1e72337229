package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/dialogflow/v2"

	"growling-tummy/internal/router"
	pkgResponse "growling-tummy/pkg/response"
)

// HandleDialogflowWebhook godoc
// @Summary     Dialogflow fulfillment
// @Description Answers a Dialogflow ES v2 WebhookRequest. The intent display name selects the query.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       body body object true "Dialogflow WebhookRequest"
// @Success     200 {object} object "Dialogflow WebhookResponse"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BasicAuth
// @Router      /webhook/dialogflow [POST]
func (h *Handler) HandleDialogflowWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	defer h.observe(c, PlatformDialogflow, time.Now())

	if !h.authorize(c, PlatformDialogflow) {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "%s: failed to read body: %v", LogPrefixDialogflow, err)
		pkgResponse.Error(c, err, nil)
		return
	}
	h.l.Debugf(ctx, "%s: headers=%v body=%s", LogPrefixDialogflow, redactedHeaders(c.Request.Header), body)

	var req dialogflow.GoogleCloudDialogflowV2WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixDialogflow, err)
		pkgResponse.Error(c, fmt.Errorf("%w: %v", ErrInvalidPayload, err), nil)
		return
	}
	if req.QueryResult == nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixDialogflow, ErrMissingQueryResult)
		pkgResponse.Error(c, ErrMissingQueryResult, nil)
		return
	}

	name := dialogflowIntentName(req.QueryResult)
	params, err := router.DecodeParams(req.QueryResult.Parameters)
	if err != nil {
		// A bad parameter object still gets an answer, usually a prompt.
		h.l.Warnf(ctx, "%s: intent %q: %v", LogPrefixDialogflow, name, err)
		params = router.Params{}
	}

	reply := h.router.Route(ctx, router.Request{
		Intent: router.ParseIntent(name),
		Params: params,
	})

	c.JSON(http.StatusOK, newDialogflowResponse(reply))
}

// dialogflowIntentName prefers the intent display name and falls back to the
// action.
func dialogflowIntentName(qr *dialogflow.GoogleCloudDialogflowV2QueryResult) string {
	if qr.Intent != nil && qr.Intent.DisplayName != "" {
		return qr.Intent.DisplayName
	}
	return qr.Action
}

// newDialogflowResponse emits one text message per reply line, plus the
// joined text as fulfillmentText.
func newDialogflowResponse(reply router.Reply) *dialogflow.GoogleCloudDialogflowV2WebhookResponse {
	messages := make([]*dialogflow.GoogleCloudDialogflowV2IntentMessage, 0, len(reply.Lines))
	for _, line := range reply.Lines {
		messages = append(messages, &dialogflow.GoogleCloudDialogflowV2IntentMessage{
			Text: &dialogflow.GoogleCloudDialogflowV2IntentMessageText{
				Text: []string{line},
			},
		})
	}

	return &dialogflow.GoogleCloudDialogflowV2WebhookResponse{
		FulfillmentText:     reply.Text(),
		FulfillmentMessages: messages,
		Source:              Source,
	}
}

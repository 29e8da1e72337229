package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"growling-tummy/internal/router"
	"growling-tummy/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubRouter records the last request and answers with a fixed reply.
type stubRouter struct {
	last  router.Request
	calls int
	reply router.Reply
}

func (s *stubRouter) Route(ctx context.Context, req router.Request) router.Reply {
	s.last = req
	s.calls++
	if s.reply.Intent == "" {
		return router.Reply{Intent: req.Intent, Lines: []string{"ok"}}
	}
	return s.reply
}

func newTestHandler(r router.Router, sec SecurityConfig, alexa AlexaConfig) *Handler {
	return NewHandler(r, sec, alexa, log.NewNop())
}

// newTestEngine trusts no proxies, like the server with an empty
// webhook.trusted_proxies.
func newTestEngine(h *Handler) *gin.Engine {
	return newTestEngineBehind(h, nil)
}

func newTestEngineBehind(h *Handler, trustedProxies []string) *gin.Engine {
	e := gin.New()
	if err := e.SetTrustedProxies(trustedProxies); err != nil {
		panic(err)
	}
	e.POST("/webhook/dialogflow", h.HandleDialogflowWebhook)
	e.POST("/webhook/alexa", h.HandleAlexaWebhook)
	e.POST("/api/v1/query", h.HandleQuery)
	return e
}

func post(e *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

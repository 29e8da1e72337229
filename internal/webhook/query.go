package webhook

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	pkgResponse "growling-tummy/pkg/response"
)

// HandleQuery godoc
// @Summary     Ask a question directly
// @Description Routes an intent and its parameters without an NLU platform in front.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Intent and parameters"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/query [POST]
func (h *Handler) HandleQuery(c *gin.Context) {
	ctx := c.Request.Context()
	defer h.observe(c, PlatformREST, time.Now())

	if !h.authorize(c, PlatformREST) {
		return
	}

	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixQuery, err)
		pkgResponse.Error(c, fmt.Errorf("%w: %v", ErrInvalidPayload, err), nil)
		return
	}

	routed, err := req.toRequest()
	if err != nil {
		h.l.Warnf(ctx, "%s: intent %q: %v", LogPrefixQuery, req.Intent, err)
	}

	reply := h.router.Route(ctx, routed)
	pkgResponse.OK(c, queryResp{
		Intent:   reply.Intent,
		Lines:    reply.Lines,
		Text:     reply.Text(),
		ServedAt: pkgResponse.DateTime(time.Now()),
	})
}

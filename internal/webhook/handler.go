package webhook

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"growling-tummy/internal/metrics"
	pkgResponse "growling-tummy/pkg/response"
)

// authorize runs the IP, secret and rate-limit checks for platform. On
// failure it writes the rejection and returns false.
func (h *Handler) authorize(c *gin.Context, platform string) bool {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "%s webhook rejected: %v", platform, err)
		metrics.WebhookRejected.WithLabelValues(platform, ReasonIPNotAllowed).Inc()
		pkgResponse.Forbidden(c)
		return false
	}

	if err := h.security.ValidateSecret(c.GetHeader(HeaderWebhookSecret)); err != nil {
		h.l.Warnf(ctx, "%s webhook rejected: %v", platform, err)
		metrics.WebhookRejected.WithLabelValues(platform, ReasonInvalidSecret).Inc()
		pkgResponse.Unauthorized(c)
		return false
	}

	if err := h.security.CheckRateLimit(platform); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		metrics.WebhookRejected.WithLabelValues(platform, ReasonRateLimited).Inc()
		pkgResponse.TooManyRequests(c)
		return false
	}

	return true
}

// observe records the request count and latency once the handler is done.
func (h *Handler) observe(c *gin.Context, platform string, start time.Time) {
	metrics.WebhookDuration.WithLabelValues(platform).Observe(time.Since(start).Seconds())
	metrics.WebhookRequests.WithLabelValues(platform, strconv.Itoa(c.Writer.Status())).Inc()
}

// redactedHeaders returns a copy of header safe to log.
func redactedHeaders(header http.Header) http.Header {
	out := header.Clone()
	if out == nil {
		return nil
	}
	for _, key := range []string{"Authorization", HeaderWebhookSecret} {
		if out.Get(key) != "" {
			out.Set(key, "[redacted]")
		}
	}
	return out
}

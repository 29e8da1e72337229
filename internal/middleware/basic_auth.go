package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"growling-tummy/pkg/response"
)

// BasicAuth checks HTTP basic credentials against the configured username
// and bcrypt hash. Missing credentials get 401, wrong ones 403. It is a
// no-op when no username is configured.
func (m Middleware) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.basicAuth.enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		u, p, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", "Basic")
			response.Unauthorized(c)
			return
		}

		if u != m.basicAuth.Username {
			m.l.Warnf(ctx, "basic auth: unknown user %q", u)
			c.Header("WWW-Authenticate", "Basic")
			response.Forbidden(c)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(m.basicAuth.HashedPassword), []byte(p)); err != nil {
			m.l.Warnf(ctx, "basic auth: %v", err)
			c.Header("WWW-Authenticate", "Basic")
			response.Forbidden(c)
			return
		}

		c.Next()
	}
}

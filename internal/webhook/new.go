package webhook

import (
	"growling-tummy/internal/router"
	pkgLog "growling-tummy/pkg/log"
)

type Handler struct {
	router   router.Router
	security *SecurityValidator
	alexa    AlexaConfig
	l        pkgLog.Logger
}

func NewHandler(
	r router.Router,
	securityConfig SecurityConfig,
	alexaConfig AlexaConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		router:   r,
		security: NewSecurityValidator(securityConfig),
		alexa:    alexaConfig,
		l:        l,
	}
}

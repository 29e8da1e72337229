package middleware

import (
	"growling-tummy/pkg/log"
)

// BasicAuthConfig enables HTTP basic auth when Username is set.
// HashedPassword must be a bcrypt hash.
type BasicAuthConfig struct {
	Username       string
	HashedPassword string
}

func (c BasicAuthConfig) enabled() bool {
	return c.Username != ""
}

type Middleware struct {
	l         log.Logger
	basicAuth BasicAuthConfig
}

func New(l log.Logger, basicAuth BasicAuthConfig) Middleware {
	return Middleware{
		l:         l,
		basicAuth: basicAuth,
	}
}

package webhook

import "errors"

var (
	ErrInvalidPayload         = errors.New("invalid webhook payload")
	ErrMissingQueryResult     = errors.New("webhook request has no queryResult")
	ErrUnsupportedRequestType = errors.New("unsupported alexa request type")
	ErrApplicationIDMismatch  = errors.New("alexa application id mismatch")
	ErrInvalidSecret          = errors.New("invalid webhook secret")
)

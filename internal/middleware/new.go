package middleware

import (
	"calendar-pro/pkg/log"
)

// Middleware holds the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	m := Middleware{l: l}
	if ratePerMin > 0 {
		m.limiter = newRateLimiter(ratePerMin)
	}
	return m
}

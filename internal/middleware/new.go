package middleware

import (
	"golang.org/x/time/rate"

	"todo-service/config"
	"todo-service/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	perMin := cfg.PerMin
	if perMin <= 0 {
		perMin = 120
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = perMin
	}

	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst),
	}
}

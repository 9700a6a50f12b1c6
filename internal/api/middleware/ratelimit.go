package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/poscentral/website-api/internal/api/metrics"
	"github.com/poscentral/website-api/internal/core/ports"
)

// RateLimit throttles a route per client IP using the injected store. A
// store failure fails open: the request proceeds and the error is logged,
// so a redis outage cannot take the public forms down.
func RateLimit(store ports.LimiterStore, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := scope + ":" + c.RealIP()

			allowed, err := store.Allow(c.Request().Context(), key)
			if err != nil {
				log.Error().Err(err).Str("scope", scope).Msg("rate limit store failure")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}

package ports

import "context"

// LimiterStore answers fixed-window rate-limit decisions for a client key
// (IP or email). Implementations may be process-local or shared between
// instances; the middleware does not care.
type LimiterStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether a caller may perform another write inside the
// current window.
type Limiter interface {
	Allow(ctx context.Context, callerID string, limit int, window time.Duration) (bool, error)
}

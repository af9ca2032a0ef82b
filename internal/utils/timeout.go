package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds a single statement when no override has been
// configured, so a wedged connection cannot pin a request indefinitely.
const DefaultDBTimeout = 5 * time.Second

var dbTimeout = DefaultDBTimeout

// SetDBTimeout overrides the per-statement timeout. Called once at startup
// from the database config; non-positive values keep the current setting.
func SetDBTimeout(d time.Duration) {
	if d > 0 {
		dbTimeout = d
	}
}

// WithDBTimeout derives a context bounding one database round trip.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, dbTimeout)
}

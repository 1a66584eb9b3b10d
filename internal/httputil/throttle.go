// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"time"
)

// Throttle sleeps for the given delay before a request is issued, honoring
// context cancellation. A zero or negative delay returns immediately. Upstream
// services (EBI OLS, Europe PMC) ask bulk clients to pace their requests; a
// fixed pre-request pause keeps each worker under that pace.
func Throttle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

package entry

import (
	"context"
	"time"
)

const (
	// blob keys are "<title>.md", anything else in the bucket is ignored
	ext         = ".md"
	contentType = "text/markdown; charset=utf-8"
)

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

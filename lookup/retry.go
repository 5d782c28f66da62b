package lookup

import (
	"context"
	"log/slog"
	"time"
)

// FetchFunc loads one page.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the pauses between page load attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch until it succeeds, pausing delays[i]
// before attempt i+2. With no delays fetch is called once. The error of the
// last attempt is returned, or ctx's error once ctx ends. logger may be nil.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if attempt == len(delays) {
			return "", err
		}

		if logger != nil {
			logger.Warn("fetch retry", "url", url, "attempt", attempt+2, "error", err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}

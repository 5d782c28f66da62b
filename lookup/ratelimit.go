package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/giftlist"
	"golang.org/x/time/rate"
)

var _ giftlist.DomainLimiter = (*DomainLimiter)(nil)

// DefaultPageInterval is the minimum time between two page loads from the
// same host.
const DefaultPageInterval = time.Second

// DomainLimiter spaces out page loads per host using token buckets with a
// burst of 1.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewDomainLimiter creates a DomainLimiter allowing one request per interval
// to each host. A non-positive interval disables limiting.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.interval <= 0 {
		return ctx.Err()
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.interval), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

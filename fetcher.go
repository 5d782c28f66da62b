package giftlist

import "context"

// Fetcher loads a marketplace page and returns its markup after client-side
// rendering has finished. It is the only place where the network is touched.
type Fetcher interface {
	// Fetch returns the rendered HTML of url. Cancelling ctx aborts the load.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close shuts down whatever browser or connection backs the Fetcher.
	Close() error
}

// DomainLimiter paces page loads per host.
type DomainLimiter interface {
	// Wait returns once a page load from host may start, or with ctx's
	// error if ctx ends first.
	Wait(ctx context.Context, host string) error
}

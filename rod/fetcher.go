// Package rod implements giftlist.Fetcher with headless Chrome driven by go-rod.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/giftlist"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements giftlist.Fetcher at compile time.
var _ giftlist.Fetcher = (*Fetcher)(nil)

const (
	// DefaultFetchTimeout bounds a whole fetch including waits.
	DefaultFetchTimeout = 60 * time.Second

	// DefaultSettleDelay is how long to let client-side rendering finish
	// after the load event.
	DefaultSettleDelay = 2 * time.Second

	// DefaultWaitTimeout bounds the wait for the card selector.
	DefaultWaitTimeout = 10 * time.Second

	// DefaultUserAgent is a desktop Chrome user agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultAcceptLanguage matches the marketplace's locale.
	DefaultAcceptLanguage = "ru-RU,ru;q=0.9,en;q=0.8"
)

// DefaultWaitSelector matches any listing card the extractor recognizes.
const DefaultWaitSelector = `article[data-auto="searchOrganic"], div[data-zone-name="item"]`

// Fetcher retrieves rendered HTML using Chrome. Each fetch opens a fresh tab.
type Fetcher struct {
	manager *BrowserManager
	closed  atomic.Bool

	fetchTimeout time.Duration
	settleDelay  time.Duration
	waitSelector string
	waitTimeout  time.Duration
	userAgent    string
	maxPages     int64
	headless     bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithSettleDelay sets the pause between the load event and reading the DOM.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithWaitSelector makes each fetch wait up to timeout for selector to
// appear. A page where it never appears is still returned. An empty selector
// disables the wait.
func WithWaitSelector(selector string, timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.waitSelector = selector
		f.waitTimeout = timeout
	}
}

// WithUserAgent overrides the user agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxPages sets how many pages are opened before Chrome is restarted.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithShowBrowser runs Chrome with a visible window.
func WithShowBrowser() Option {
	return func(f *Fetcher) {
		f.headless = false
	}
}

// NewFetcher launches Chrome and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fetchTimeout: DefaultFetchTimeout,
		settleDelay:  DefaultSettleDelay,
		waitSelector: DefaultWaitSelector,
		waitTimeout:  DefaultWaitTimeout,
		userAgent:    DefaultUserAgent,
		maxPages:     DefaultMaxPages,
		headless:     true,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithRecycleAfter(f.maxPages), WithHeadless(f.headless))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to url in a new tab, waits for the page to render and
// returns its HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", giftlist.Errorf(giftlist.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.fetchTimeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()
	f.manager.IncrementPageCount()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent:      f.userAgent,
			AcceptLanguage: DefaultAcceptLanguage,
		}); err != nil {
			return "", fmt.Errorf("setting user agent: %w", err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.waitSelector != "" && f.waitTimeout > 0 {
		waiting := page.Timeout(f.waitTimeout)
		_, err := waiting.Element(f.waitSelector)
		waiting.CancelTimeout()
		// Pages without cards are still valid results.
		if err != nil && ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	if f.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.settleDelay):
		}
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the Chrome launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is how many pages one Chrome process serves before it is
// replaced.
const DefaultMaxPages = 75

// DefaultWindowSize is the viewport of the desktop marketplace layout.
const DefaultWindowSize = "1920,1200"

// chrome is one running browser process and the connection to it.
type chrome struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func (c *chrome) shutdown() error {
	err := c.browser.Close()
	c.launcher.Kill()
	return err
}

// BrowserManager owns the Chrome process. Chrome keeps memory from every
// page it has rendered, so after a number of pages the process is replaced
// with a fresh one.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu      sync.Mutex
	current *chrome

	pages     atomic.Int64
	recycleAt int64
	headless  bool
	closed    atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithRecycleAfter replaces Chrome after n pages. Zero or less never recycles.
func WithRecycleAfter(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.recycleAt = n
	}
}

// WithHeadless controls whether Chrome runs without a window.
func WithHeadless(headless bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.headless = headless
	}
}

// NewBrowserManager starts Chrome. Close must be called to stop it.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		recycleAt: DefaultMaxPages,
		headless:  true,
	}
	for _, opt := range opts {
		opt(bm)
	}

	c, err := startChrome(bm.headless)
	if err != nil {
		return nil, err
	}
	bm.current = c

	return bm, nil
}

// Browser returns the browser to open the next page in. Once the page
// budget is spent a new Chrome is started and the old one stopped; if the
// new one fails to start the old one keeps serving.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.recycleAt > 0 && bm.pages.Load() >= bm.recycleAt {
		if fresh, err := startChrome(bm.headless); err == nil {
			_ = bm.current.shutdown()
			bm.current = fresh
			bm.pages.Store(0)
		}
	}

	return bm.current.browser
}

// IncrementPageCount counts one opened page against the recycle budget.
func (bm *BrowserManager) IncrementPageCount() {
	bm.pages.Add(1)
}

// Close stops Chrome. Calls after the first are no-ops.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	c := bm.current
	bm.current = nil
	if c == nil {
		return nil
	}
	return c.shutdown()
}

// LauncherPID returns the PID of the Chrome launcher, or 0 after Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.current == nil {
		return 0
	}
	return bm.current.launcher.PID()
}

// startChrome launches Chrome with flags that let it run inside containers
// and keep rendering when the window is in the background.
func startChrome(headless bool) (*chrome, error) {
	l := launcher.New().
		Set("window-size", DefaultWindowSize).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-extensions").
		Set("ignore-certificate-errors").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		NoSandbox(true).
		Leakless(true).
		Headless(headless)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to chrome: %w", err)
	}

	return &chrome{browser: browser, launcher: l}, nil
}

package rod

import (
	"context"
	"sync"

	"github.com/fwojciec/docscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultRecycleAfter is the number of rendered pages after which the
// browser process is replaced.
const DefaultRecycleAfter = 75

// Browser owns a Chrome process and hands out tabs. Chrome's memory grows
// over a long crawl, so the process is relaunched every RecycleAfter tabs.
//
// Browser is safe for concurrent use.
type Browser struct {
	mu           sync.Mutex
	browser      *rod.Browser
	launcher     *launcher.Launcher
	opened       int
	generation   int
	recycleAfter int
	headless     bool
	closed       bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithRecycleAfter sets how many tabs are opened before the process is
// replaced. Non-positive values disable recycling.
func WithRecycleAfter(n int) BrowserOption {
	return func(b *Browser) {
		b.recycleAfter = n
	}
}

// WithVisibleWindow runs Chrome with a window instead of headless.
func WithVisibleWindow() BrowserOption {
	return func(b *Browser) {
		b.headless = false
	}
}

// NewBrowser launches Chrome. Returns EINTERNAL when Chrome or Chromium
// cannot be found or started.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{
		recycleAfter: DefaultRecycleAfter,
		headless:     true,
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// OpenPage opens a blank tab bound to ctx. The caller closes the page.
func (b *Browser) OpenPage(ctx context.Context) (*rod.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, docscrape.Errorf(docscrape.EINVALID, "browser is closed")
	}
	if b.recycleAfter > 0 && b.opened >= b.recycleAfter {
		b.recycle()
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINTERNAL, "opening tab: %v", err)
	}
	b.opened++
	return page.Context(ctx), nil
}

// Generation counts how many Chrome processes this Browser has started.
func (b *Browser) Generation() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

// PID returns the launcher's process id, or 0 once closed.
func (b *Browser) PID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// Close stops Chrome. Subsequent calls are no-ops.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	err := shutdown(b.browser, b.launcher)
	b.browser, b.launcher = nil, nil
	return err
}

// launch must be called with mu held or before b is shared.
func (b *Browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(b.headless)

	controlURL, err := l.Launch()
	if err != nil {
		return docscrape.Errorf(docscrape.EINTERNAL, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return docscrape.Errorf(docscrape.EINTERNAL, "connecting to browser: %v", err)
	}

	b.browser, b.launcher = browser, l
	b.opened = 0
	b.generation++
	return nil
}

// recycle replaces the Chrome process. The old one is kept if the new one
// fails to start. Must be called with mu held.
func (b *Browser) recycle() {
	oldBrowser, oldLauncher := b.browser, b.launcher
	if err := b.launch(); err != nil {
		b.browser, b.launcher = oldBrowser, oldLauncher
		return
	}
	_ = shutdown(oldBrowser, oldLauncher)
}

func shutdown(browser *rod.Browser, l *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}

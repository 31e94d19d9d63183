package browser

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rotisserie/eris"
)

// BrowserSession represents a headless browser automation session
type BrowserSession struct {
	Launcher *launcher.Launcher
	Browser  *rod.Browser
	Page     *rod.Page
}

// NewBrowserSession launches a headless browser and opens a blank page bound
// to ctx with the given timeout.
func NewBrowserSession(ctx context.Context, timeout time.Duration) (*BrowserSession, error) {
	l := launcher.New().Headless(true)
	url, err := l.Launch()
	if err != nil {
		return nil, eris.Wrap(err, "launching browser")
	}

	browser := rod.New().ControlURL(url).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, eris.Wrap(err, "connecting to browser")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		l.Cleanup()
		return nil, eris.Wrap(err, "creating page")
	}

	return &BrowserSession{
		Launcher: l,
		Browser:  browser,
		Page:     page.Timeout(timeout),
	}, nil
}

// Close cleans up the browser session
func (bs *BrowserSession) Close() {
	if bs.Page != nil {
		bs.Page.Close()
	}
	if bs.Browser != nil {
		bs.Browser.Close()
	}
	if bs.Launcher != nil {
		bs.Launcher.Cleanup()
	}
}

// NavigateAndWait navigates to a URL and waits for it to load
func (bs *BrowserSession) NavigateAndWait(url string) error {
	if err := bs.Page.Navigate(url); err != nil {
		return eris.Wrapf(err, "navigating to %s", url)
	}
	if err := bs.Page.WaitLoad(); err != nil {
		return eris.Wrap(err, "waiting for page load")
	}
	return nil
}

// HTML returns the current page's HTML.
func (bs *BrowserSession) HTML() (string, error) {
	html, err := bs.Page.HTML()
	return html, eris.Wrap(err, "reading page HTML")
}

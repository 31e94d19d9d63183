package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"telcodegen/browser"
)

const DefaultBaseURL = "https://en.wikipedia.org"

// Fetch modes
const (
	ModeRaw     = "raw"
	ModeAPI     = "api"
	ModeBrowser = "browser"
)

// Fetcher returns the wikitext of an article.
type Fetcher interface {
	Fetch(ctx context.Context, article string) (string, error)
}

// NewFetcher returns the fetcher for mode.
func NewFetcher(mode, baseURL string) (Fetcher, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	switch mode {
	case "", ModeRaw:
		return &RawFetcher{BaseURL: baseURL, Client: http.DefaultClient}, nil
	case ModeAPI:
		return &APIFetcher{BaseURL: baseURL, Client: http.DefaultClient}, nil
	case ModeBrowser:
		return &BrowserFetcher{BaseURL: baseURL, Timeout: 60 * time.Second}, nil
	}
	return nil, eris.Errorf("unknown fetch mode %q", mode)
}

// RawURL is the action=raw URL of article.
func RawURL(baseURL, article string) string {
	return fmt.Sprintf("%s/w/index.php?title=%s&action=raw", baseURL, url.QueryEscape(article))
}

// APIURL is the MediaWiki API URL returning the current revision of article.
func APIURL(baseURL, article string) string {
	return fmt.Sprintf("%s/w/api.php?action=query&format=json&formatversion=2&prop=revisions&rvprop=content&rvslots=main&titles=%s",
		baseURL, url.QueryEscape(article))
}

// RawFetcher downloads the raw wikitext through index.php?action=raw.
type RawFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f *RawFetcher) Fetch(ctx context.Context, article string) (string, error) {
	body, err := get(ctx, f.Client, RawURL(f.BaseURL, article))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// APIFetcher reads the wikitext out of the MediaWiki API's JSON answer.
type APIFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f *APIFetcher) Fetch(ctx context.Context, article string) (string, error) {
	body, err := get(ctx, f.Client, APIURL(f.BaseURL, article))
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(body) {
		return "", eris.New("API answer is not JSON")
	}

	page := gjson.GetBytes(body, "query.pages.0")
	if page.Get("missing").Bool() || page.Get("invalid").Bool() {
		return "", eris.Errorf("article %q does not exist", article)
	}
	content := page.Get("revisions.0.slots.main.content")
	if !content.Exists() {
		return "", eris.Errorf("API answer for %q has no revision content", article)
	}
	return content.String(), nil
}

// BrowserFetcher loads the action=raw URL in a headless browser, for hosts
// that refuse plain HTTP clients. The browser shows text/plain documents
// inside a <pre> element.
type BrowserFetcher struct {
	BaseURL string
	Timeout time.Duration
}

func (f *BrowserFetcher) Fetch(ctx context.Context, article string) (string, error) {
	bs, err := browser.NewBrowserSession(ctx, f.Timeout)
	if err != nil {
		return "", err
	}
	defer bs.Close()

	if err := bs.NavigateAndWait(RawURL(f.BaseURL, article)); err != nil {
		return "", err
	}
	html, err := bs.HTML()
	if err != nil {
		return "", err
	}
	return TextFromHTML(html)
}

// TextFromHTML returns the text of the first <pre> element of a rendered
// plain text document, or the body text without one.
func TextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", eris.Wrap(err, "parsing page HTML")
	}
	if pre := doc.Find("pre").First(); pre.Length() > 0 {
		return pre.Text(), nil
	}
	return doc.Find("body").Text(), nil
}

func get(ctx context.Context, client *http.Client, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "building request for %s", u)
	}
	req.Header.Set("User-Agent", "telcodegen (lookup table generator)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "fetching %s", u)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("fetching %s: HTTP %s", u, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "reading response body")
	}
	return body, nil
}

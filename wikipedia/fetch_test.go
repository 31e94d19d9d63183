package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w/index.php", r.URL.Path)
		assert.Equal(t, "raw", r.URL.Query().Get("action"))
		assert.Equal(t, "Mobile_country_code", r.URL.Query().Get("title"))
		fmt.Fprint(w, "== A - B ==\n")
	}))
	defer srv.Close()

	f, err := NewFetcher(ModeRaw, srv.URL+"/")
	require.NoError(t, err)
	text, err := f.Fetch(context.Background(), "Mobile_country_code")
	require.NoError(t, err)
	assert.Equal(t, "== A - B ==\n", text)
}

func TestRawFetcherHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f, err := NewFetcher(ModeRaw, srv.URL)
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), "Nope")
	assert.ErrorContains(t, err, "404")
}

func TestAPIFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w/api.php", r.URL.Path)
		switch r.URL.Query().Get("titles") {
		case "Mobile_country_code":
			fmt.Fprint(w, `{"batchcomplete":true,"query":{"pages":[{"pageid":1,"title":"Mobile country code",
				"revisions":[{"slots":{"main":{"contentmodel":"wikitext","content":"== X - Y ==\n{|\n|}"}}}]}]}}`)
		case "Missing":
			fmt.Fprint(w, `{"query":{"pages":[{"title":"Missing","missing":true}]}}`)
		default:
			fmt.Fprint(w, `<html>not json</html>`)
		}
	}))
	defer srv.Close()

	f, err := NewFetcher(ModeAPI, srv.URL)
	require.NoError(t, err)

	text, err := f.Fetch(context.Background(), "Mobile_country_code")
	require.NoError(t, err)
	assert.Equal(t, "== X - Y ==\n{|\n|}", text)

	_, err = f.Fetch(context.Background(), "Missing")
	assert.ErrorContains(t, err, "does not exist")

	_, err = f.Fetch(context.Background(), "Garbage")
	assert.Error(t, err)
}

func TestNewFetcherUnknownMode(t *testing.T) {
	_, err := NewFetcher("carrier-pigeon", "")
	assert.Error(t, err)

	f, err := NewFetcher(ModeBrowser, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, f.(*BrowserFetcher).BaseURL)
}

func TestTextFromHTML(t *testing.T) {
	text, err := TextFromHTML(`<html><head></head><body><pre style="word-wrap: break-word">== A - B ==
{| class="wikitable"
| 1 &amp;&amp; 2
|}</pre></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "== A - B ==\n{| class=\"wikitable\"\n| 1 && 2\n|}", text)

	text, err = TextFromHTML(`<html><body>plain</body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "plain", text)
}

type stubFetcher struct {
	calls int
	text  string
}

func (s *stubFetcher) Fetch(ctx context.Context, article string) (string, error) {
	s.calls++
	return s.text + article, nil
}

func TestCacheDownloadsAndStores(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	stub := &stubFetcher{text: "text of "}
	c := &Cache{Dir: dir, Fetcher: stub}

	text, err := c.Load(context.Background(), MobileCodes)
	require.NoError(t, err)
	assert.Equal(t, "text of Mobile_country_code", text)
	assert.Equal(t, 1, stub.calls)

	stored, err := os.ReadFile(filepath.Join(dir, "mcc.wtext"))
	require.NoError(t, err)
	assert.Equal(t, text, string(stored))

	// without downloads the cached copy is used and nothing is fetched
	offline := &Cache{Dir: dir, NoDownload: true, Fetcher: stub}
	text, err = offline.Load(context.Background(), MobileCodes)
	require.NoError(t, err)
	assert.Equal(t, "text of Mobile_country_code", text)
	assert.Equal(t, 1, stub.calls)

	_, err = offline.Load(context.Background(), CallingCodes)
	assert.Error(t, err)
}

func TestCacheWithoutFetcher(t *testing.T) {
	c := &Cache{Dir: t.TempDir()}
	_, err := c.Load(context.Background(), CallingCodes)
	assert.Error(t, err)
}

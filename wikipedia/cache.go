package wikipedia

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Article is a Wikipedia article together with the name of its cache file.
type Article struct {
	Title     string
	CacheFile string
}

var (
	CallingCodes = Article{Title: "List_of_country_calling_codes", CacheFile: "cc.wtext"}
	MobileCodes  = Article{Title: "Mobile_country_code", CacheFile: "mcc.wtext"}
)

// Articles lists every article the generator reads.
var Articles = []Article{CallingCodes, MobileCodes}

// Cache serves articles from Dir. Unless NoDownload is set every article is
// fetched and the cache file rewritten.
type Cache struct {
	Dir        string
	NoDownload bool
	Fetcher    Fetcher
}

// Path is the cache file of a.
func (c *Cache) Path(a Article) string {
	return filepath.Join(c.Dir, a.CacheFile)
}

// Load returns the wikitext of a.
func (c *Cache) Load(ctx context.Context, a Article) (string, error) {
	path := c.Path(a)
	log := zap.L().With(zap.String("article", a.Title), zap.String("file", path))

	if c.NoDownload {
		log.Info("opening cached article")
		b, err := os.ReadFile(path)
		if err != nil {
			return "", eris.Wrapf(err, "reading %s", path)
		}
		return string(b), nil
	}
	if c.Fetcher == nil {
		return "", eris.New("downloading is enabled but no fetcher is configured")
	}

	log.Info("fetching article")
	text, err := c.Fetcher.Fetch(ctx, a.Title)
	if err != nil {
		return "", eris.Wrapf(err, "fetching %s", a.Title)
	}
	log.Debug("fetched article", zap.String("size", humanize.Bytes(uint64(len(text)))))

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return "", eris.Wrapf(err, "creating %s", c.Dir)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", eris.Wrapf(err, "writing %s", path)
	}
	return text, nil
}

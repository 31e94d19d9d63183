package wikitext

import (
	"regexp"
	"strings"
)

var (
	wikiLinkRegex     = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]*))?\]\]`)
	externalLinkRegex = regexp.MustCompile(`\[((?:https?:|ftp:)?//[^\s\]]+)(?:\s+([^\]]*))?\]`)
	tagRegex          = regexp.MustCompile(`<[^>]*>`)
)

// WikiLink is an internal `[[target|text]]` link. Text is empty when the link
// has no display text.
type WikiLink struct {
	Target string
	Text   string
}

// ExternalLink is a bracketed `[url text]` link.
type ExternalLink struct {
	URL  string
	Text string
}

// WikiLinks returns the internal links of s in document order.
func WikiLinks(s string) []WikiLink {
	var links []WikiLink
	for _, m := range wikiLinkRegex.FindAllStringSubmatch(s, -1) {
		links = append(links, WikiLink{
			Target: strings.TrimSpace(m[1]),
			Text:   strings.TrimSpace(m[2]),
		})
	}
	return links
}

// ExternalLinks returns the bracketed external links of s in document order.
func ExternalLinks(s string) []ExternalLink {
	var links []ExternalLink
	for _, m := range externalLinkRegex.FindAllStringSubmatch(s, -1) {
		links = append(links, ExternalLink{
			URL:  m[1],
			Text: strings.TrimSpace(m[2]),
		})
	}
	return links
}

// FormatLabel turns a table cell into a display label: the first wikilink's
// text (or target), else the first external link's text (or URL), else the
// cell itself, with tags removed and &amp; decoded.
func FormatLabel(s string) string {
	r := s
	if links := WikiLinks(s); len(links) > 0 {
		r = links[0].Text
		if r == "" {
			r = links[0].Target
		}
	} else if ext := ExternalLinks(s); len(ext) > 0 {
		r = ext[0].Text
		if r == "" {
			r = ext[0].URL
		}
	}
	r = tagRegex.ReplaceAllString(r, "")
	r = strings.ReplaceAll(r, "&amp;", "&")
	return strings.TrimSpace(r)
}

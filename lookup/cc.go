package lookup

import (
	"strings"

	"github.com/rotisserie/eris"

	"telcodegen/wikitext"
)

// CallingCodeSection is the title prefix of the section of the calling code
// article that holds the per-country table.
const CallingCodeSection = "Alphabetical listing"

// CallingCodes merges calling codes into a code → labels mapping. A country
// is recorded at most once per code, also when it arrives as part of a
// combined "A/B" label.
type CallingCodes struct {
	labels map[string][]string
}

// NewCallingCodes returns an empty mapping.
func NewCallingCodes() *CallingCodes {
	return &CallingCodes{labels: map[string][]string{}}
}

// Add records the countries of label for code unless they are already there.
func (c *CallingCodes) Add(code, label string) {
	for _, name := range strings.Split(label, "/") {
		name = strings.TrimSpace(name)
		if name == "" || c.has(code, name) {
			continue
		}
		c.labels[code] = append(c.labels[code], name)
	}
}

func (c *CallingCodes) has(code, name string) bool {
	for _, l := range c.labels[code] {
		if l == name {
			return true
		}
	}
	return false
}

// AddRow records the codes the links of cell point at for label.
func (c *CallingCodes) AddRow(label, cell string) {
	for _, link := range wikitext.WikiLinks(cell) {
		for _, code := range linkCodes(link) {
			if code != "" {
				c.Add(code, label)
			}
		}
	}
}

// Entries returns the mapping sorted by code with labels joined by "/".
func (c *CallingCodes) Entries() []Entry {
	entries := make([]Entry, 0, len(c.labels))
	for code, labels := range c.labels {
		entries = append(entries, Entry{Key: code, Value: strings.Join(labels, "/")})
	}
	sortByKey(entries)
	return entries
}

// linkCodes returns the codes a link spells out in its target or its text,
// e.g. "+1 758, +1 767". Of the two the one with more codes wins, then the
// one with the longer first code; on a tie the text wins.
func linkCodes(link wikitext.WikiLink) []string {
	var best []string
	for _, s := range []string{link.Target, link.Text} {
		if !strings.HasPrefix(strings.TrimSpace(s), "+") {
			continue
		}
		var codes []string
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimPrefix(strings.TrimSpace(part), "+")
			part = strings.NewReplacer(" ", "", "-", "").Replace(part)
			codes = append(codes, part)
		}
		if best == nil || len(codes) > len(best) ||
			(len(codes) == len(best) && len(codes[0]) >= len(best[0])) {
			best = codes
		}
	}
	return best
}

// CallingCodeTable builds the country calling code table from the
// "List of country calling codes" article.
func CallingCodeTable(doc *wikitext.Document) (Table, error) {
	var section *wikitext.Section
	for i := range doc.Sections {
		if strings.Contains(doc.Sections[i].Title, CallingCodeSection) {
			section = &doc.Sections[i]
		}
	}
	if section == nil {
		return Table{}, eris.Errorf("no %q section in calling code article", CallingCodeSection)
	}
	if len(section.Tables) == 0 {
		return Table{}, eris.Errorf("section %q has no table", section.Title)
	}

	codes := NewCallingCodes()
	for _, row := range section.Tables[0].DataRows() {
		if len(row) < 2 {
			continue
		}
		label := wikitext.FormatLabel(row[0])
		if label == "" {
			continue
		}
		codes.AddRow(label, row[1])
	}

	return Table{
		Name: "cc_map",
		Comments: `Country Calling Codes a.k.a. Country Codes (CC)'
extracted from https://en.wikipedia.org/wiki/List_of_country_calling_codes#Alphabetical_listing_by_country_or_region
The map also contain de-facto country codes, i.e. prefixes resulting
from the ITU CC and a numbering plan area code that addresses
countries, territories or other international entities.
Google's libphonenumber was not used because it just contains ITU CCs`,
		Entries: codes.Entries(),
	}, nil
}

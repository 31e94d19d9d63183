// Package extract pulls tagged table rows out of wikitext articles whose
// section titles look like "Country - CC" or "Country - CC1/CC2".
package extract

import (
	"strings"
)

// Row is one table row tagged with the codes and country label of the
// section it came from.
type Row struct {
	Cells   []string
	Codes   []string
	Country string
}

// Cell returns the i-th cell or "" when the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// SplitTitle derives the country label and code list of a section title.
// ok is false when the title carries no usable code.
func SplitTitle(title string) (country string, codes []string, ok bool) {
	if strings.Contains(title, "International") {
		return title, nil, true
	}

	parts := strings.Split(title, " - ")
	if len(parts) < 2 {
		return "", nil, false
	}
	code := strings.TrimSpace(parts[1])
	if code == "" {
		return "", nil, false
	}

	switch {
	case strings.Contains(code, "/"):
		codes = strings.Split(code, "/")
	case strings.Contains(code, "-"):
		codes = strings.Split(code, "-")
	default:
		codes = []string{code}
	}
	return parts[0], codes, true
}

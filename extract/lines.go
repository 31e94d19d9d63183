package extract

import (
	"regexp"
	"strings"
)

var codeSplitRegex = regexp.MustCompile(`[/-]`)

// Lines is the line scanning extractor. It works on raw source lines
// without building a document: `==` lines set the current country and codes,
// `{|` and `|}` open and close a table and every `|` line inside a table
// that is not a `|-` separator is a row of `||` separated cells.
//
// Unlike Sections it splits the code field on `/` and `-` at once, keeps
// rows of tables that precede any usable heading (with no codes) and uses
// every table of a section, not only the first one.
func Lines(lines []string) []Row {
	var rows []Row
	var codes []string
	country := ""
	inTable := false

	for _, l := range lines {
		l = strings.TrimRight(l, "\r")
		switch {
		case strings.HasPrefix(l, "=="):
			t := strings.Trim(l, "= ")
			xs := strings.Split(t, " - ")
			if len(xs) > 1 {
				country = xs[0]
				codes = codeSplitRegex.Split(xs[1], -1)
			} else {
				codes = nil
				country = ""
			}
		case strings.HasPrefix(l, "{|"):
			inTable = true
		case strings.HasPrefix(l, "|}"):
			inTable = false
		case inTable && !strings.HasPrefix(l, "|-") && strings.HasPrefix(l, "|"):
			cells := splitRow(l)
			if len(cells) == 0 {
				continue
			}
			rows = append(rows, Row{Cells: cells, Codes: codes, Country: country})
		}
	}
	return rows
}

func splitRow(l string) []string {
	t := strings.TrimSpace(l[1:])
	xs := strings.Split(t, "||")
	if len(xs) == 0 || strings.TrimSpace(xs[0]) == "" {
		return nil
	}
	for i := range xs {
		xs[i] = strings.TrimSpace(xs[i])
	}
	return xs
}

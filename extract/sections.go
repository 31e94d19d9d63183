package extract

import (
	"strings"

	"go.uber.org/zap"

	"telcodegen/wikitext"
)

// Sections walks the sections of doc and returns the rows of the first table
// of every section whose title yields a code list. Header rows and rows with
// an empty first cell are dropped.
func Sections(doc *wikitext.Document) []Row {
	var rows []Row
	skipped := 0

	for _, s := range doc.Sections {
		country, codes, ok := SplitTitle(s.Title)
		if !ok || len(s.Tables) == 0 {
			continue
		}

		for _, cells := range s.Tables[0].DataRows() {
			if len(cells) == 0 || strings.TrimSpace(cells[0]) == "" {
				skipped++
				continue
			}
			rows = append(rows, Row{Cells: cells, Codes: codes, Country: country})
		}
	}

	zap.L().Debug("extracted section rows", zap.Int("rows", len(rows)), zap.Int("skipped", skipped))
	return rows
}

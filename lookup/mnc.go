package lookup

import (
	"strings"

	"telcodegen/extract"
	"telcodegen/wikitext"
)

// column layout of the Wikipedia MCC/MNC tables
const (
	colMCC = iota
	colMNC
	colBrand
	colOperator
)

// MNCTable maps MCC+MNC to the operator label. Unassigned ranges, rows
// without a label and rows whose MNC is empty, unknown ("?") or a range are
// dropped.
func MNCTable(rows []extract.Row) Table {
	var entries []Entry
	for _, row := range rows {
		if len(row.Cells) <= colOperator {
			continue
		}
		operator := row.Cell(colOperator)
		if strings.Contains(operator, "Unassigned") || strings.Contains(row.Country, "Unassigned") {
			continue
		}
		label := row.Cell(colBrand)
		if label == "" {
			label = operator
		}
		if label == "" {
			continue
		}
		mnc := row.Cell(colMNC)
		if mnc == "" || mnc == "?" || strings.Contains(mnc, "-") {
			continue
		}
		entries = append(entries, Entry{Key: row.Cell(colMCC) + mnc, Value: wikitext.FormatLabel(label)})
	}
	sortByKey(entries)

	return Table{
		Name: "mcc_mnc_map",
		Comments: `MNC - Mobile Network Code
extracted from: https://en.wikipedia.org/wiki/Mobile_country_code`,
		Entries: entries,
	}
}

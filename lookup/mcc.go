package lookup

import (
	"telcodegen/extract"
)

// Origin is a (code list, country label) pair recorded for an MCC.
type Origin struct {
	Codes   []string
	Country string
}

// MCCMap groups origins by mobile country code in first-seen order.
type MCCMap struct {
	keys    []string
	origins map[string][]Origin
	seen    map[string]map[string]bool
}

// AggregateMCC groups rows by their first cell. For each MCC only the first
// row of every country label is kept.
func AggregateMCC(rows []extract.Row) *MCCMap {
	m := &MCCMap{
		origins: map[string][]Origin{},
		seen:    map[string]map[string]bool{},
	}
	for _, row := range rows {
		m.add(row.Cell(0), Origin{Codes: row.Codes, Country: row.Country})
	}
	return m
}

func (m *MCCMap) add(mcc string, o Origin) {
	labels, ok := m.seen[mcc]
	if !ok {
		labels = map[string]bool{}
		m.seen[mcc] = labels
		m.keys = append(m.keys, mcc)
	}
	if labels[o.Country] {
		return
	}
	labels[o.Country] = true
	m.origins[mcc] = append(m.origins[mcc], o)
}

// Keys returns the MCCs in first-seen order.
func (m *MCCMap) Keys() []string {
	return m.keys
}

// Origins returns the origins recorded for mcc.
func (m *MCCMap) Origins(mcc string) []Origin {
	return m.origins[mcc]
}

// MCCTable maps every MCC to the names of the countries its sections list.
func MCCTable(m *MCCMap, r *Resolver) Table {
	values := map[string]string{}
	for _, mcc := range m.Keys() {
		var codes []string
		for _, o := range m.Origins(mcc) {
			codes = append(codes, o.Codes...)
		}
		values[mcc] = r.Names(codes)
	}
	values["001"] = "TEST"
	values["901"] = "International"

	entries := make([]Entry, 0, len(values))
	for k, v := range values {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sortByKey(entries)

	return Table{
		Name: "mcc_map",
		Comments: `MCC - Mobile Country Code
extracted from: https://en.wikipedia.org/wiki/Mobile_country_code`,
		Entries: entries,
	}
}

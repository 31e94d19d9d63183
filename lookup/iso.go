package lookup

import (
	"github.com/biter777/countries"
)

// CurrencyTable maps ISO 4217 letter codes to currency names. SDR is added
// as the common alias of XDR.
func CurrencyTable() Table {
	var entries []Entry
	for _, c := range countries.AllCurrencies() {
		if !c.IsValid() || len(c.Alpha()) != 3 {
			continue
		}
		entries = append(entries, Entry{Key: c.Alpha(), Value: c.String()})
	}
	sdr := "Special Drawing Rights"
	if xdr := countries.CurrencyCodeByName("XDR"); xdr.IsValid() {
		sdr = xdr.String()
	}
	entries = append(entries, Entry{Key: "SDR", Value: sdr})
	sortByKey(entries)

	return Table{
		Name: "cur_map",
		Comments: `Generated from the ISO 4217 currency list
cf. https://github.com/biter777/countries

In addition, it includes SDR as popular XDR alias. `,
		Entries: entries,
	}
}

// Alpha3Table maps ISO 3166 alpha-3 country codes to country names.
func Alpha3Table() Table {
	var entries []Entry
	for _, c := range countries.All() {
		if !c.IsValid() || len(c.Alpha3()) != 3 {
			continue
		}
		entries = append(entries, Entry{Key: c.Alpha3(), Value: c.String()})
	}
	sortByKey(entries)

	return Table{
		Name: "iso_alpha3_map",
		Comments: `Generated from the ISO 3166 country list
cf. https://github.com/biter777/countries`,
		Entries: entries,
	}
}

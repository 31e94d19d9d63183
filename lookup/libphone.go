package lookup

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// PrefixKind selects one of libphonenumber's prefix resource sets.
type PrefixKind string

const (
	Carrier PrefixKind = "carrier"
	Area    PrefixKind = "geocoding"
)

const libphoneComments = `Generated from Google's libphonenumber prefix resources
cf. https://github.com/google/libphonenumber/tree/master/resources`

// PrefixTable reads libphonenumber's `<root>/<kind>/<lang>/<cc>.txt` files,
// each holding `prefix|name` lines, and maps every prefix to its English name
// or, without one, to the name of the first language in sorted order.
func PrefixTable(root string, kind PrefixKind) (Table, error) {
	dir := filepath.Join(root, string(kind))
	langs, err := os.ReadDir(dir)
	if err != nil {
		return Table{}, eris.Wrapf(err, "reading %s", dir)
	}

	names := map[string]map[string]string{}
	files := 0
	for _, lang := range langs {
		if !lang.IsDir() {
			continue
		}
		paths, err := filepath.Glob(filepath.Join(dir, lang.Name(), "*.txt"))
		if err != nil {
			return Table{}, eris.Wrap(err, "listing prefix files")
		}
		for _, path := range paths {
			if err := readPrefixFile(path, lang.Name(), names); err != nil {
				return Table{}, err
			}
			files++
		}
	}
	zap.L().Debug("read prefix files",
		zap.String("kind", string(kind)),
		zap.Int("files", files),
		zap.Int("prefixes", len(names)))

	entries := make([]Entry, 0, len(names))
	for prefix, byLang := range names {
		entries = append(entries, Entry{Key: prefix, Value: preferEnglish(byLang)})
	}
	sortByKey(entries)

	t := Table{Comments: libphoneComments, Entries: entries}
	switch kind {
	case Carrier:
		t.Name = "carrier_code_map"
		t.Comments += `

Note that due to number portability effective in different areas
those (original) carrier allocations are not necessarily stable.`
	default:
		t.Name = "area_code_map"
	}
	return t, nil
}

func readPrefixFile(path, lang string, names map[string]map[string]string) error {
	f, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prefix, name, ok := strings.Cut(line, "|")
		if !ok || prefix == "" {
			continue
		}
		if names[prefix] == nil {
			names[prefix] = map[string]string{}
		}
		names[prefix][lang] = name
	}
	return eris.Wrapf(scanner.Err(), "reading %s", path)
}

func preferEnglish(byLang map[string]string) string {
	if name, ok := byLang["en"]; ok {
		return name
	}
	langs := make([]string, 0, len(byLang))
	for lang := range byLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return byLang[langs[0]]
}

// nonGeoRegion is libphonenumber's region code for codes without a region.
const nonGeoRegion = "001"

// internationalServices are the ITU codes that no region owns.
var internationalServices = map[int]string{
	800: "International Freephone (UIFN)",
	808: "Shared Cost Services (reserved)",
	870: "Inmarsat",
	878: "Universal Personal Telecommunications",
	881: "Global Mobile Satellite System",
	882: "International Networks",
	883: "International Networks",
	888: "Telecommunications for Disaster Relief by OCHA",
	979: "International Premium Rate Service",
}

// ITUCallingCodeTable maps the ITU calling codes libphonenumber knows to the
// regions using them, ordered numerically.
func ITUCallingCodeTable(r *Resolver) Table {
	names := map[int]string{}
	nonGeo := phonenumbers.GetSupportedGlobalNetworkCallingCodes()
	for code := range phonenumbers.GetSupportedCallingCodes() {
		regions := phonenumbers.GetRegionCodesForCountryCode(code)
		if nonGeo[code] || len(regions) == 0 || nonGeographic(regions) {
			continue
		}
		labels := make([]string, len(regions))
		for i, region := range regions {
			labels[i] = regionName(r, region)
		}
		names[code] = strings.Join(labels, "/")
	}
	for code, name := range internationalServices {
		names[code] = name
	}

	codes := make([]int, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	entries := make([]Entry, len(codes))
	for i, code := range codes {
		entries[i] = Entry{Key: strconv.Itoa(code), Value: names[code]}
	}
	return Table{
		Name: "itu_cc_map",
		Comments: `ITU Country Calling Codes
Generated from Google's libphonenumber via github.com/nyaruka/phonenumbers`,
		Entries: entries,
	}
}

func nonGeographic(regions []string) bool {
	for _, region := range regions {
		if region == nonGeoRegion {
			return true
		}
	}
	return false
}

func regionName(r *Resolver, region string) string {
	switch region {
	case "AC":
		return "Ascension Island"
	case "TA":
		return "Tristan"
	}
	return r.Name(region)
}

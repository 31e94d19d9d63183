package lookup

import (
	"strings"

	"github.com/biter777/countries"
)

// Other is the label used for codes that nothing can resolve.
const Other = "other"

// inofficialCountries covers user-assigned and disputed alpha-2 codes that
// Wikipedia uses but ISO 3166 does not list.
var inofficialCountries = map[string]string{
	"XK": "Kosovo",
	"AB": "Abkhazia",
}

// CountryNamer looks up the English name of an ISO 3166 alpha-2 code.
type CountryNamer interface {
	CountryName(alpha2 string) (string, bool)
}

type isoCountries struct{}

func (isoCountries) CountryName(alpha2 string) (string, bool) {
	if len(alpha2) != 2 {
		return "", false
	}
	c := countries.ByName(alpha2)
	// ByName also accepts names, aliases and lower case codes
	if !c.IsValid() || c.Alpha2() != alpha2 {
		return "", false
	}
	return c.String(), true
}

// Resolver maps alpha-2 codes to country names. It consults the exception
// table first, then the ISO dataset and falls back to Other.
type Resolver struct {
	exceptions map[string]string
	names      CountryNamer
}

// NewResolver returns a Resolver backed by the ISO 3166 dataset.
func NewResolver() *Resolver {
	return NewResolverWith(isoCountries{})
}

// NewResolverWith returns a Resolver backed by names.
func NewResolverWith(names CountryNamer) *Resolver {
	return &Resolver{exceptions: inofficialCountries, names: names}
}

// Name resolves one code.
func (r *Resolver) Name(code string) string {
	code = strings.TrimSpace(code)
	if name, ok := r.exceptions[code]; ok {
		return name
	}
	if name, ok := r.names.CountryName(code); ok {
		return name
	}
	return Other
}

// Names resolves codes and joins them with "/". An empty list is Other.
func (r *Resolver) Names(codes []string) string {
	if len(codes) == 0 {
		return Other
	}
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = r.Name(code)
	}
	return strings.Join(names, "/")
}

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telcodegen/wikitext"
)

const article = `Lead.

== National operators ==

=== Country - CH/LI ===
{| class="wikitable"
! MCC !! MNC !! Brand !! Operator
|-
| 41 || 01 || [[Swisscom]] || Swisscom
|-
|  || 99 || Ghost || nobody
|}

=== Abkhazia - GE-AB ===
{| class="wikitable"
| 289 || 67 || Aquafon || Aquafon
|}
{| class="wikitable"
| 289 || 99 || Second table || ignored
|}

=== No separator ===
{| class="wikitable"
| 123 || 45 || Lost || Lost
|}

=== Empty code - ===
{| class="wikitable"
| 124 || 45 || Lost || Lost
|}

=== Tableless - XX ===

== International operators ==
{| class="wikitable"
| 901 || 01 || ICO || ICO Satellite
|}
`

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		title   string
		country string
		codes   []string
		ok      bool
	}{
		{"Country - CH/LI", "Country", []string{"CH", "LI"}, true},
		{"Abkhazia - GE-AB", "Abkhazia", []string{"GE", "AB"}, true},
		{"Germany - DE", "Germany", []string{"DE"}, true},
		{"Foo - A/B-C", "Foo", []string{"A", "B-C"}, true},
		{"International operators", "International operators", nil, true},
		{"No separator", "", nil, false},
		{"Dash-but-no-spaces", "", nil, false},
		{"Trailing -  ", "", nil, false},
	}
	for _, tt := range tests {
		country, codes, ok := SplitTitle(tt.title)
		assert.Equal(t, tt.ok, ok, tt.title)
		assert.Equal(t, tt.country, country, tt.title)
		assert.Equal(t, tt.codes, codes, tt.title)
	}
}

func TestSections(t *testing.T) {
	rows := Sections(wikitext.Parse(article))

	require.Len(t, rows, 3)
	assert.Equal(t, Row{
		Cells:   []string{"41", "01", "[[Swisscom]]", "Swisscom"},
		Codes:   []string{"CH", "LI"},
		Country: "Country",
	}, rows[0])
	assert.Equal(t, []string{"GE", "AB"}, rows[1].Codes)
	assert.Equal(t, "289", rows[1].Cell(0))
	assert.Equal(t, "International operators", rows[2].Country)
	assert.Empty(t, rows[2].Codes)
}

func TestSectionsDropsEmptyFirstCell(t *testing.T) {
	for _, row := range Sections(wikitext.Parse(article)) {
		assert.NotEmpty(t, strings.TrimSpace(row.Cell(0)))
		assert.NotEqual(t, "Lost", row.Cell(2))
	}
}

func TestLines(t *testing.T) {
	rows := Lines(strings.Split(article, "\n"))

	var keys []string
	for _, r := range rows {
		keys = append(keys, r.Cell(0)+"/"+r.Cell(1))
	}
	// the line scanner keeps the second table of a section and the tables
	// under headings without codes, but never rows with an empty first cell
	assert.Equal(t, []string{"41/01", "289/67", "289/99", "123/45", "124/45", "901/01"}, keys)

	assert.Equal(t, []string{"CH", "LI"}, rows[0].Codes)
	assert.Equal(t, "Country", rows[0].Country)
	assert.Equal(t, []string{"GE", "AB"}, rows[1].Codes)
	assert.Nil(t, rows[3].Codes)
	assert.Nil(t, rows[4].Codes)
	assert.Nil(t, rows[5].Codes)
}

func TestLinesSplitsOnBothSeparators(t *testing.T) {
	rows := Lines([]string{
		"=== Foo - A/B-C ===",
		"{|",
		"|-",
		"| 1 || x",
		"|}",
		"| 2 || outside",
	})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"A", "B", "C"}, rows[0].Codes)
	assert.Equal(t, []string{"1", "x"}, rows[0].Cells)
}

func TestRowCell(t *testing.T) {
	r := Row{Cells: []string{"a"}}
	assert.Equal(t, "a", r.Cell(0))
	assert.Equal(t, "", r.Cell(3))
	assert.Equal(t, "", r.Cell(-1))
}

package emit

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telcodegen/lookup"
)

func TestLuaWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewLuaWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteTable(lookup.Table{
		Name:     "mcc_map",
		Comments: "MCC - Mobile Country Code\nextracted from: somewhere",
		Entries: []lookup.Entry{
			{Key: "228", Value: "Switzerland/Liechtenstein"},
			{Key: "310", Value: "'quoted'"},
			{Key: "311", Value: `Côte d'Ivoire \ X`},
		},
	}))

	assert.Equal(t, luaGolden, buf.String())
}

var luaGolden = `-- Lookup tables for various mobile telecommunications related codes
--
-- Autogenerated with telcodegen


-- MCC - Mobile Country Code
-- extracted from: somewhere
mcc_map = {
  ['228'] = 'Switzerland/Liechtenstein',
  ['310'] = 'quoted',
  ['311'] = 'Côte d\'Ivoire \\ X',
}
`

func TestLuaWriterIntKey(t *testing.T) {
	var buf bytes.Buffer
	w := NewLuaWriter(&buf)

	require.NoError(t, w.WriteTable(lookup.Table{
		Name:     "cc_map",
		Comments: "CC",
		IntKey:   true,
		Entries: []lookup.Entry{
			{Key: "001", Value: "Test"},
			{Key: "1242", Value: "Bahamas"},
			{Key: "7", Value: "Russia"},
			{Key: "41", Value: "Switzerland"},
		},
	}))

	assert.Equal(t, `
-- CC
cc_map = {
  [7] = 'Russia',
  [41] = 'Switzerland',
  [001] = 'Test',
  ['1242'] = 'Bahamas',
}
function get_cc_map(s)
  if string.len(s) < 4 then
    return cc_map[tonumber(s)]
  else
    return cc_map[s]
  end
end
`, buf.String())
}

func TestLuaWriterKeepsDuplicates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLuaWriter(&buf).WriteTable(lookup.Table{
		Name:    "t",
		Entries: []lookup.Entry{{Key: "1", Value: "a"}, {Key: "1", Value: "b"}},
	}))
	assert.Equal(t, "\nt = {\n  ['1'] = 'a',\n  ['1'] = 'b',\n}\n", buf.String())
}

func TestLuaWriterIntKeyNonNumeric(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLuaWriter(&buf).WriteTable(lookup.Table{
		Name:   "m",
		IntKey: true,
		Entries: []lookup.Entry{
			{Key: "12", Value: "num"},
			{Key: "A1", Value: "alpha"},
			{Key: "x'y", Value: "quoted"},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "  [12] = 'num',\n")
	assert.Contains(t, out, "  ['A1'] = 'alpha',\n")
	assert.Contains(t, out, `  ['x\'y'] = 'quoted',`+"\n")
	assert.NotContains(t, out, "[A1]")
}

func TestSQLiteSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	sink, err := OpenSQLite(path)
	require.NoError(t, err)
	defer sink.Close()

	var _ Sink = sink

	require.NoError(t, sink.WriteTable(lookup.Table{
		Name:     "mcc_map",
		Comments: "MCC",
		Entries: []lookup.Entry{
			{Key: "228", Value: "Switzerland"},
			{Key: "001", Value: "TEST"},
			{Key: "228", Value: "Switzerland/Liechtenstein"},
		},
	}))

	v, err := sink.Lookup("mcc_map", "228")
	require.NoError(t, err)
	assert.Equal(t, "Switzerland/Liechtenstein", v)

	_, err = sink.Lookup("mcc_map", "999")
	assert.Error(t, err)

	// rewriting a table replaces it
	require.NoError(t, sink.WriteTable(lookup.Table{
		Name:    "mcc_map",
		Entries: []lookup.Entry{{Key: "901", Value: "International"}},
	}))
	entries, err := sink.Entries("mcc_map")
	require.NoError(t, err)
	assert.Equal(t, []lookup.Entry{{Key: "901", Value: "International"}}, entries)
}

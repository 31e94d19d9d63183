// Package emit writes lookup tables out, as Lua source or into SQLite.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"telcodegen/lookup"
)

// IntKeyMaxLen is the length from which keys stay strings in integer key
// mode.
const IntKeyMaxLen = 4

// Sink receives finished lookup tables.
type Sink interface {
	WriteTable(t lookup.Table) error
}

const banner = `-- Lookup tables for various mobile telecommunications related codes
--
-- Autogenerated with telcodegen

`

// LuaWriter writes tables as Lua table constructors. Every table is flushed
// as soon as it is written.
type LuaWriter struct {
	w *bufio.Writer
}

// NewLuaWriter returns a LuaWriter writing to w.
func NewLuaWriter(w io.Writer) *LuaWriter {
	return &LuaWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the file banner.
func (l *LuaWriter) WriteHeader() error {
	if _, err := l.w.WriteString(banner); err != nil {
		return eris.Wrap(err, "writing banner")
	}
	return eris.Wrap(l.w.Flush(), "flushing banner")
}

// WriteTable writes t preceded by its comments. With t.IntKey set, entries
// are ordered by key length then key, numeric keys shorter than
// IntKeyMaxLen are written as numbers and a get_<name> accessor follows the
// table.
func (l *LuaWriter) WriteTable(t lookup.Table) error {
	entries := t.Entries
	if t.IntKey {
		entries = append([]lookup.Entry(nil), entries...)
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i].Key, entries[j].Key
			if len(a) != len(b) {
				return len(a) < len(b)
			}
			return a < b
		})
	}

	var b strings.Builder
	b.WriteString("\n")
	if t.Comments != "" {
		for _, c := range strings.Split(t.Comments, "\n") {
			b.WriteString("-- " + c + "\n")
		}
	}
	fmt.Fprintf(&b, "%s = {\n", t.Name)
	for _, e := range entries {
		if t.IntKey && len(e.Key) < IntKeyMaxLen && numeric(e.Key) {
			fmt.Fprintf(&b, "  [%s] = '%s',\n", e.Key, quote(e.Value))
		} else {
			fmt.Fprintf(&b, "  ['%s'] = '%s',\n", escape(e.Key), quote(e.Value))
		}
	}
	b.WriteString("}\n")
	if t.IntKey {
		fmt.Fprintf(&b, `function get_%[1]s(s)
  if string.len(s) < %[2]d then
    return %[1]s[tonumber(s)]
  else
    return %[1]s[s]
  end
end
`, t.Name, IntKeyMaxLen)
	}

	if _, err := l.w.WriteString(b.String()); err != nil {
		return eris.Wrapf(err, "writing table %s", t.Name)
	}
	return eris.Wrapf(l.w.Flush(), "flushing table %s", t.Name)
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func quote(s string) string {
	return escape(strings.Trim(s, "'"))
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}

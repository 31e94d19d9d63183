// Package lookup turns extracted rows and reference datasets into the
// key/value tables that get emitted.
package lookup

import (
	"sort"
)

// Entry is one key/value pair of a lookup table.
type Entry struct {
	Key   string
	Value string
}

// Table is a named, ordered lookup table. IntKey asks the emitter to write
// short keys as integers and to add an accessor function.
type Table struct {
	Name     string
	Comments string
	Entries  []Entry
	IntKey   bool
}

// sortByKey orders entries by key, byte-wise. Entries with equal keys keep
// their relative order.
func sortByKey(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
}

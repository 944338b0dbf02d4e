// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colortable

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

const maxLineBytes = 1024 * 1024

// Entry is a single row of the table.
type Entry struct {
	Name  string
	Value PackedColor
}

// Table maps normalized names to packed colors, iterating in first-seen order.
// It is not safe for concurrent use.
type Table struct {
	entries *linkedhashmap.Map
	// stripped holds the space-stripped accepted names, partitioned by the first character of the name.
	stripped   map[byte][]string
	maxNameLen int
}

// New returns an empty table.
func New() *Table {
	return &Table{
		entries:  linkedhashmap.New(),
		stripped: make(map[byte][]string),
	}
}

// Build reads the whole source and returns the resulting table.
// Any malformed record aborts the build; no partial table is returned.
func Build(r io.Reader) (*Table, error) {
	t := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	lineNo := 0

	for sc.Scan() {
		lineNo++

		rec, ok, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if !ok {
			continue
		}

		t.Add(rec)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading color source: %w", err)
	}

	return t, nil
}

// Parse is Build over an in-memory source.
func Parse(data []byte) (*Table, error) {
	return Build(bytes.NewReader(data))
}

// Add inserts the record unless an earlier name starting with the same
// character is equal to it once spaces are removed. It reports whether the
// record was kept.
func (t *Table) Add(rec Record) bool {
	if rec.Name == "" {
		return false
	}

	first := rec.Name[0]
	candidate := stripSpaces(rec.Name)

	for _, existing := range t.stripped[first] {
		if existing == candidate {
			return false
		}
	}

	t.entries.Put(rec.Name, rec.Packed())
	t.stripped[first] = append(t.stripped[first], candidate)
	t.maxNameLen = max(t.maxNameLen, len(rec.Name))

	return true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.entries.Size()
}

// MaxNameLen returns the length in bytes of the longest name.
func (t *Table) MaxNameLen() int {
	return t.maxNameLen
}

// Get returns the value stored under the exact normalized name.
func (t *Table) Get(name string) (PackedColor, bool) {
	v, ok := t.entries.Get(name)
	if !ok {
		return 0, false
	}

	return v.(PackedColor), true
}

// Entries returns the rows in insertion order.
func (t *Table) Entries() []Entry {
	res := make([]Entry, 0, t.entries.Size())
	it := t.entries.Iterator()

	for it.Next() {
		res = append(res, Entry{
			Name:  it.Key().(string),
			Value: it.Value().(PackedColor),
		})
	}

	return res
}

// Names returns the normalized names in insertion order.
func (t *Table) Names() []string {
	keys := t.entries.Keys()
	res := make([]string, len(keys))

	for i, k := range keys {
		res[i] = k.(string)
	}

	return res
}

// Lookup resolves a user supplied color name the way XLookupColor does.
// Case is ignored and a space in a table name may be left out of the query,
// so "LightBlue" finds "light blue". The first matching row wins.
func (t *Table) Lookup(query string) (Entry, bool) {
	query = strings.ToLower(query)
	if query == "" {
		return Entry{}, false
	}

	it := t.entries.Iterator()
	for it.Next() {
		name := it.Key().(string)
		if matchName(name, query) {
			return Entry{Name: name, Value: it.Value().(PackedColor)}, true
		}
	}

	return Entry{}, false
}

// matchName expects query to be lowercased already.
func matchName(name, query string) bool {
	if len(query) > len(name) {
		return false
	}

	q := 0

	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			if q < len(query) && query[q] == ' ' {
				q++
			}

			continue
		}

		if q >= len(query) || name[i] != query[q] {
			return false
		}

		q++
	}

	return q == len(query)
}

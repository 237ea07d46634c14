// Package refmap implements the document-level reference-definition
// table: a case-insensitive, whitespace-normalized dictionary populated
// by the block phase from `[label]: dest "title"` definitions and read
// only by the inline link parser.
package refmap

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is the resolved destination and optional title for one label.
type Entry struct {
	Destination string
	Title       string
	HasTitle    bool
}

// Map is a normalized-label -> Entry dictionary.
type Map struct {
	entries map[string]Entry
}

// New returns an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]Entry)}
}

var fold = cases.Fold()

// NormalizeKey applies Unicode case-folding and collapses runs of ASCII
// whitespace to a single space, trimming the ends — the key normalization
// demanded by §4.I so that "Foo Bar", "foo   bar", and "FOO\tBAR" all
// resolve to the same reference.
func NormalizeKey(label string) string {
	folded := fold.String(label)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
	})
	return strings.Join(fields, " ")
}

// Define registers or overwrites a label's destination/title. The first
// definition of a label in document order wins per CommonMark; callers
// that want "first wins" semantics should check Lookup before calling
// Define, which this package leaves to the block phase so as not to
// impose an ordering policy here.
func (m *Map) Define(label, destination, title string) {
	key := NormalizeKey(label)
	entry := Entry{Destination: destination}
	if title != "" {
		entry.Title = title
		entry.HasTitle = true
	}
	m.entries[key] = entry
}

// DefineIfAbsent registers a label only if it has no definition yet,
// implementing CommonMark's "first definition wins" rule.
func (m *Map) DefineIfAbsent(label, destination, title string) {
	key := NormalizeKey(label)
	if _, exists := m.entries[key]; exists {
		return
	}
	m.Define(label, destination, title)
}

// Lookup resolves a label, returning its entry and whether it was found.
func (m *Map) Lookup(label string) (Entry, bool) {
	e, ok := m.entries[NormalizeKey(label)]
	return e, ok
}

// Len reports the number of distinct defined labels.
func (m *Map) Len() int {
	return len(m.entries)
}

// Package extract scans source text and HTML templates for translatable
// messages and emits gettext POT templates.
//
// It operates on caller-provided content: pass source bytes to ScanSource,
// a template reader to ScanHTML, and collect the resulting entries into a
// POT file with WritePOT. Walking directories and wiring this into a build
// step is left to the caller.
package extract

import "sort"

// Entry is one extracted message: context, msgid and optional plural, with
// the references where it was seen.
type Entry struct {
	MsgCtxt     string
	MsgID       string
	MsgIDPlural string
	Refs        []Ref
}

// Ref locates one occurrence of a message in scanned content.
type Ref struct {
	File string
	Line int
}

// key identifies an entry for deduplication across scans.
type key struct {
	ctxt   string
	id     string
	plural string
}

// Set accumulates entries across multiple scans, merging references for
// messages seen more than once.
type Set struct {
	entries map[key]*Entry
}

// NewSet creates an empty entry set.
func NewSet() *Set {
	return &Set{entries: make(map[key]*Entry)}
}

// Add merges an entry into the set.
func (s *Set) Add(entry Entry) {
	k := key{ctxt: entry.MsgCtxt, id: entry.MsgID, plural: entry.MsgIDPlural}

	existing, ok := s.entries[k]
	if !ok {
		e := entry
		s.entries[k] = &e
		return
	}

	existing.Refs = append(existing.Refs, entry.Refs...)
}

// AddAll merges a batch of entries, typically one scan's output.
func (s *Set) AddAll(entries []Entry) {
	for _, entry := range entries {
		s.Add(entry)
	}
}

// Entries returns the merged entries sorted by context, msgid and plural.
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MsgCtxt != out[j].MsgCtxt {
			return out[i].MsgCtxt < out[j].MsgCtxt
		}
		if out[i].MsgID != out[j].MsgID {
			return out[i].MsgID < out[j].MsgID
		}
		return out[i].MsgIDPlural < out[j].MsgIDPlural
	})

	return out
}

// Len returns the number of distinct entries.
func (s *Set) Len() int {
	return len(s.entries)
}

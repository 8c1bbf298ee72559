package polingo

import "sort"

// MessageKey identifies one catalog entry by context and msgid.
type MessageKey struct {
	MsgCtxt string
	MsgID   string
}

// DiffResult represents the difference between two catalog versions of the
// same locale+domain pair.
type DiffResult struct {
	// Added contains keys present only in the new catalog.
	Added []MessageKey

	// Removed contains keys present only in the old catalog.
	Removed []MessageKey

	// Changed contains keys whose msgstr or msgid_plural differ.
	Changed []MessageKey

	// Unchanged contains keys identical in both catalogs.
	Unchanged []MessageKey
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Changed   int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Changed:   len(d.Changed),
		Unchanged: len(d.Unchanged),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// NeedsTranslation returns the keys a translator has to revisit:
// everything added or changed.
func (d *DiffResult) NeedsTranslation() []MessageKey {
	keys := make([]MessageKey, 0, len(d.Added)+len(d.Changed))
	keys = append(keys, d.Added...)
	keys = append(keys, d.Changed...)
	return keys
}

// DiffCatalogs compares two versions of a catalog and reports which entries
// were added, removed or changed. Useful for incremental retranslation:
// only ship the NeedsTranslation set to translators.
//
// Result slices are sorted by context then msgid for stable output.
func DiffCatalogs(oldCatalog, newCatalog *Catalog) *DiffResult {
	result := &DiffResult{}

	oldEntries := flatten(oldCatalog)
	newEntries := flatten(newCatalog)

	for key, oldTr := range oldEntries {
		newTr, ok := newEntries[key]
		switch {
		case !ok:
			result.Removed = append(result.Removed, key)
		case !sameTranslation(oldTr, newTr):
			result.Changed = append(result.Changed, key)
		default:
			result.Unchanged = append(result.Unchanged, key)
		}
	}

	for key := range newEntries {
		if _, ok := oldEntries[key]; !ok {
			result.Added = append(result.Added, key)
		}
	}

	sortKeys(result.Added)
	sortKeys(result.Removed)
	sortKeys(result.Changed)
	sortKeys(result.Unchanged)

	return result
}

func flatten(c *Catalog) map[MessageKey]*Translation {
	entries := make(map[MessageKey]*Translation)
	if c == nil {
		return entries
	}

	for ctxt, bucket := range c.Translations {
		for msgid, tr := range bucket {
			entries[MessageKey{MsgCtxt: ctxt, MsgID: msgid}] = tr
		}
	}

	return entries
}

func sameTranslation(a, b *Translation) bool {
	if a.MsgIDPlural != b.MsgIDPlural || len(a.MsgStr) != len(b.MsgStr) {
		return false
	}

	for i := range a.MsgStr {
		if a.MsgStr[i] != b.MsgStr[i] {
			return false
		}
	}

	return true
}

func sortKeys(keys []MessageKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].MsgCtxt != keys[j].MsgCtxt {
			return keys[i].MsgCtxt < keys[j].MsgCtxt
		}
		return keys[i].MsgID < keys[j].MsgID
	})
}

package polingo

import "testing"

func catalogFrom(entries ...*Translation) *Catalog {
	c := NewCatalog()
	for _, tr := range entries {
		c.Add(tr)
	}
	return c
}

func TestDiffCatalogs_NoChanges(t *testing.T) {
	old := catalogFrom(
		&Translation{MsgID: "Hello", MsgStr: MsgStr{"Hola"}},
		&Translation{MsgID: "Bye", MsgStr: MsgStr{"Adiós"}},
	)
	updated := catalogFrom(
		&Translation{MsgID: "Hello", MsgStr: MsgStr{"Hola"}},
		&Translation{MsgID: "Bye", MsgStr: MsgStr{"Adiós"}},
	)

	diff := DiffCatalogs(old, updated)

	if diff.HasChanges() {
		t.Error("HasChanges = true for identical catalogs")
	}
	if got := diff.Stats(); got.Unchanged != 2 {
		t.Errorf("Stats = %+v, want 2 unchanged", got)
	}
}

func TestDiffCatalogs_AddedAndRemoved(t *testing.T) {
	old := catalogFrom(&Translation{MsgID: "Old", MsgStr: MsgStr{"Viejo"}})
	updated := catalogFrom(&Translation{MsgID: "New", MsgStr: MsgStr{"Nuevo"}})

	diff := DiffCatalogs(old, updated)

	if len(diff.Added) != 1 || diff.Added[0].MsgID != "New" {
		t.Errorf("Added = %v", diff.Added)
	}
	if len(diff.Removed) != 1 || diff.Removed[0].MsgID != "Old" {
		t.Errorf("Removed = %v", diff.Removed)
	}
	if !diff.HasChanges() {
		t.Error("HasChanges = false")
	}
}

func TestDiffCatalogs_Changed(t *testing.T) {
	old := catalogFrom(
		&Translation{MsgID: "Hello", MsgStr: MsgStr{"Hola"}},
		&Translation{MsgID: "{n} item", MsgIDPlural: "{n} items", MsgStr: MsgStr{"uno", "varios"}},
	)
	updated := catalogFrom(
		&Translation{MsgID: "Hello", MsgStr: MsgStr{"Buenas"}},
		&Translation{MsgID: "{n} item", MsgIDPlural: "{n} items", MsgStr: MsgStr{"uno", "varios"}},
	)

	diff := DiffCatalogs(old, updated)

	if len(diff.Changed) != 1 || diff.Changed[0].MsgID != "Hello" {
		t.Errorf("Changed = %v", diff.Changed)
	}
	if len(diff.Unchanged) != 1 {
		t.Errorf("Unchanged = %v", diff.Unchanged)
	}
}

func TestDiffCatalogs_PluralFormChangeDetected(t *testing.T) {
	old := catalogFrom(
		&Translation{MsgID: "{n} item", MsgIDPlural: "{n} items", MsgStr: MsgStr{"uno", "varios"}},
	)
	updated := catalogFrom(
		&Translation{MsgID: "{n} item", MsgIDPlural: "{n} things", MsgStr: MsgStr{"uno", "varios"}},
	)

	diff := DiffCatalogs(old, updated)

	if len(diff.Changed) != 1 {
		t.Errorf("Changed = %v, want the msgid_plural change detected", diff.Changed)
	}
}

func TestDiffCatalogs_ContextsAreDistinctKeys(t *testing.T) {
	old := catalogFrom(&Translation{MsgID: "Open", MsgStr: MsgStr{"Abierto"}})
	updated := catalogFrom(
		&Translation{MsgID: "Open", MsgStr: MsgStr{"Abierto"}},
		&Translation{MsgID: "Open", MsgCtxt: "menu", MsgStr: MsgStr{"Abrir"}},
	)

	diff := DiffCatalogs(old, updated)

	if len(diff.Added) != 1 || diff.Added[0].MsgCtxt != "menu" {
		t.Errorf("Added = %v", diff.Added)
	}
	if len(diff.Unchanged) != 1 || diff.Unchanged[0].MsgCtxt != "" {
		t.Errorf("Unchanged = %v", diff.Unchanged)
	}
}

func TestDiffCatalogs_NilCatalogs(t *testing.T) {
	c := catalogFrom(&Translation{MsgID: "Hello", MsgStr: MsgStr{"Hola"}})

	fromNil := DiffCatalogs(nil, c)
	if len(fromNil.Added) != 1 {
		t.Errorf("diff from nil: Added = %v", fromNil.Added)
	}

	toNil := DiffCatalogs(c, nil)
	if len(toNil.Removed) != 1 {
		t.Errorf("diff to nil: Removed = %v", toNil.Removed)
	}
}

func TestDiffResult_NeedsTranslation(t *testing.T) {
	diff := &DiffResult{
		Added:     []MessageKey{{MsgID: "a"}},
		Changed:   []MessageKey{{MsgID: "b"}},
		Unchanged: []MessageKey{{MsgID: "c"}},
	}

	keys := diff.NeedsTranslation()
	if len(keys) != 2 {
		t.Fatalf("NeedsTranslation = %v", keys)
	}
}

func TestDiffCatalogs_SortedOutput(t *testing.T) {
	updated := catalogFrom(
		&Translation{MsgID: "zebra", MsgStr: MsgStr{"z"}},
		&Translation{MsgID: "apple", MsgStr: MsgStr{"a"}},
		&Translation{MsgID: "apple", MsgCtxt: "fruit", MsgStr: MsgStr{"af"}},
	)

	diff := DiffCatalogs(nil, updated)

	want := []MessageKey{
		{MsgCtxt: "", MsgID: "apple"},
		{MsgCtxt: "", MsgID: "zebra"},
		{MsgCtxt: "fruit", MsgID: "apple"},
	}

	if len(diff.Added) != len(want) {
		t.Fatalf("Added = %v", diff.Added)
	}
	for i := range want {
		if diff.Added[i] != want[i] {
			t.Errorf("Added[%d] = %v, want %v", i, diff.Added[i], want[i])
		}
	}
}

package cache

import (
	"bytes"
	"strings"
	"testing"
)

func TestExporter_RoundTrip(t *testing.T) {
	src := NewMemory(0)
	src.Set("es:messages", testCatalog("Hello", "Hola"))
	src.Set("en:messages", testCatalog("Hello", "Hello"))

	var buf bytes.Buffer
	exporter := NewExporter(src)
	if err := exporter.Export(&buf, map[string]string{"env": "test"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := NewMemory(0)
	result, err := NewImporter(dst).Import(&buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}
	if result.Version != "1.0" {
		t.Errorf("Version = %q", result.Version)
	}
	if result.Metadata["env"] != "test" {
		t.Errorf("Metadata = %v", result.Metadata)
	}

	got, ok := dst.Get("es:messages")
	if !ok {
		t.Fatal("imported entry missing")
	}
	if tr, ok := got.Lookup("", "Hello"); !ok || tr.Get() != "Hola" {
		t.Error("imported catalog lost its translation")
	}
}

func TestExporter_UnsupportedCache(t *testing.T) {
	exporter := NewExporter(NewNoop())

	var buf bytes.Buffer
	if err := exporter.Export(&buf, nil); err == nil {
		t.Error("Export succeeded on a cache without snapshots")
	}
}

func TestImporter_SkipsInvalidEntries(t *testing.T) {
	payload := `{
		"version": "1.0",
		"exported_at": "2025-01-01T00:00:00Z",
		"entries": [
			{"key": "es:messages", "catalog": {
				"charset": "utf-8",
				"headers": {},
				"translations": {"": {"Hello": {"msgid": "Hello", "msgstr": "Hola"}}}
			}},
			{"key": "broken:messages", "catalog": null},
			{"key": "bad:messages", "catalog": {
				"charset": "utf-8",
				"headers": {},
				"translations": {"": {"x": {"msgid": "x", "msgid_plural": "xs", "msgstr": "only one form"}}}
			}}
		]
	}`

	dst := NewMemory(0)
	result, err := NewImporter(dst).Import(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if result.Failed != 2 {
		t.Errorf("Failed = %d, want 2", result.Failed)
	}
	if dst.Has("bad:messages") || dst.Has("broken:messages") {
		t.Error("invalid entry reached the cache")
	}
}

func TestImporter_MalformedJSON(t *testing.T) {
	if _, err := NewImporter(NewMemory(0)).Import(strings.NewReader("{not json")); err == nil {
		t.Error("Import accepted malformed JSON")
	}
}

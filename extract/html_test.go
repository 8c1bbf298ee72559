package extract

import (
	"strings"
	"testing"
)

const htmlFixture = `<!DOCTYPE html>
<html>
<body>
	<h1>Welcome to our store</h1>
	<p>Find the best products.</p>
	<p>Find the best products.</p>
	<span data-no-translate>BrandName</span>
	<div data-no-translate><p>Nested skipped</p></div>
	<script>console.log("not UI text");</script>
	<style>.x { color: red; }</style>
	<pre>preformatted output</pre>
	<p>   </p>
</body>
</html>`

func htmlEntries(t *testing.T) []Entry {
	t.Helper()

	entries, err := ScanHTML("index.html", strings.NewReader(htmlFixture))
	if err != nil {
		t.Fatalf("ScanHTML failed: %v", err)
	}
	return entries
}

func hasEntry(entries []Entry, msgid string) bool {
	return findEntry(entries, msgid) != nil
}

func TestScanHTML_ExtractsTextNodes(t *testing.T) {
	entries := htmlEntries(t)

	if !hasEntry(entries, "Welcome to our store") {
		t.Error("heading text not extracted")
	}
	if !hasEntry(entries, "Find the best products.") {
		t.Error("paragraph text not extracted")
	}
}

func TestScanHTML_Deduplicates(t *testing.T) {
	entries := htmlEntries(t)

	count := 0
	for _, e := range entries {
		if e.MsgID == "Find the best products." {
			count++
		}
	}

	if count != 1 {
		t.Errorf("duplicate text extracted %d times", count)
	}
}

func TestScanHTML_SkipsIgnoredContent(t *testing.T) {
	entries := htmlEntries(t)

	for _, msgid := range []string{
		"BrandName",
		"Nested skipped",
		`console.log("not UI text");`,
		"preformatted output",
	} {
		if hasEntry(entries, msgid) {
			t.Errorf("extracted ignored content %q", msgid)
		}
	}
}

func TestScanHTML_SkipsWhitespaceOnly(t *testing.T) {
	for _, e := range htmlEntries(t) {
		if strings.TrimSpace(e.MsgID) == "" {
			t.Error("extracted whitespace-only text node")
		}
	}
}

func TestScanHTML_RefCarriesFile(t *testing.T) {
	entries := htmlEntries(t)

	e := findEntry(entries, "Welcome to our store")
	if e == nil || len(e.Refs) == 0 || e.Refs[0].File != "index.html" {
		t.Errorf("entry = %+v", e)
	}
}

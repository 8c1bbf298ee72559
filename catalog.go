package polingo

import (
	"encoding/json"
	"fmt"
)

// DefaultDomain is the catalog domain used when none is configured.
const DefaultDomain = "messages"

// MsgStr holds the translated text for a message: a single form for
// non-pluralized messages, or one entry per plural form index.
//
// In the JSON catalog format msgstr may be either a plain string or an
// array of strings; both decode into MsgStr.
type MsgStr []string

// UnmarshalJSON accepts both "text" and ["one", "many"] encodings.
func (m *MsgStr) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = MsgStr{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("msgstr must be a string or an array of strings: %w", err)
	}

	*m = MsgStr(many)
	return nil
}

// MarshalJSON emits a plain string for single-form messages and an array
// otherwise, matching the wire format consumed by loaders.
func (m MsgStr) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}
	return json.Marshal([]string(m))
}

// Translation is one message entry in a catalog.
type Translation struct {
	// MsgID is the original-language key string.
	MsgID string `json:"msgid"`

	// MsgCtxt optionally disambiguates identical msgids used in
	// different contexts. Empty means the default context.
	MsgCtxt string `json:"msgctxt,omitempty"`

	// MsgIDPlural is the plural-form key, present only for pluralized messages.
	MsgIDPlural string `json:"msgid_plural,omitempty"`

	// MsgStr holds the translated forms. For pluralized messages it must
	// carry at least two entries; a single empty entry means untranslated.
	MsgStr MsgStr `json:"msgstr"`
}

// Get returns the single translated string, or "" if untranslated.
func (tr *Translation) Get() string {
	if len(tr.MsgStr) == 0 {
		return ""
	}
	return tr.MsgStr[0]
}

// GetN returns the plural form at index, or "" if the index is out of range.
func (tr *Translation) GetN(index int) string {
	if index < 0 || index >= len(tr.MsgStr) {
		return ""
	}
	return tr.MsgStr[index]
}

// IsPlural reports whether this entry carries plural forms.
func (tr *Translation) IsPlural() bool {
	return tr.MsgIDPlural != ""
}

// Catalog is the full message set for one locale+domain pair.
//
// Catalogs are immutable snapshots once handed to a Translator or a Cache;
// this is what makes sharing one Cache across Translators safe.
type Catalog struct {
	// Charset is informational, e.g. "utf-8".
	Charset string `json:"charset"`

	// Headers carries catalog metadata such as Plural-Forms.
	Headers map[string]string `json:"headers"`

	// Translations maps a context (default "") to msgid to entry.
	Translations map[string]map[string]*Translation `json:"translations"`
}

// NewCatalog returns an empty catalog with the default context bucket.
func NewCatalog() *Catalog {
	return &Catalog{
		Charset:      "utf-8",
		Headers:      make(map[string]string),
		Translations: map[string]map[string]*Translation{"": {}},
	}
}

// Add inserts tr under its context bucket, creating the bucket if needed.
func (c *Catalog) Add(tr *Translation) {
	if c.Translations == nil {
		c.Translations = make(map[string]map[string]*Translation)
	}

	bucket, ok := c.Translations[tr.MsgCtxt]
	if !ok {
		bucket = make(map[string]*Translation)
		c.Translations[tr.MsgCtxt] = bucket
	}

	bucket[tr.MsgID] = tr
}

// Lookup returns the entry for msgctxt/msgid, or nil and false when absent.
func (c *Catalog) Lookup(msgctxt, msgid string) (*Translation, bool) {
	if c == nil || c.Translations == nil {
		return nil, false
	}

	bucket, ok := c.Translations[msgctxt]
	if !ok {
		return nil, false
	}

	tr, ok := bucket[msgid]
	return tr, ok
}

// Len returns the total number of entries across all contexts.
func (c *Catalog) Len() int {
	n := 0
	for _, bucket := range c.Translations {
		n += len(bucket)
	}
	return n
}

// Validate checks the structural invariants loaders must guarantee before
// handing a catalog to the core: pluralized entries carry at least two
// forms, non-pluralized entries exactly one, and entries sit in the bucket
// matching their msgctxt.
func (c *Catalog) Validate() error {
	if c == nil {
		return &ParseError{Format: "catalog", Cause: fmt.Errorf("catalog is nil")}
	}

	for ctxt, bucket := range c.Translations {
		for msgid, tr := range bucket {
			if tr == nil {
				return &ParseError{Format: "catalog", Cause: fmt.Errorf("nil entry for msgid %q", msgid)}
			}
			if tr.MsgCtxt != ctxt {
				return &ParseError{Format: "catalog", Cause: fmt.Errorf(
					"msgid %q filed under context %q but declares %q", msgid, ctxt, tr.MsgCtxt)}
			}
			if tr.IsPlural() && len(tr.MsgStr) < 2 {
				return &ParseError{Format: "catalog", Cause: fmt.Errorf(
					"plural msgid %q has %d forms, want at least 2", msgid, len(tr.MsgStr))}
			}
			if !tr.IsPlural() && len(tr.MsgStr) > 1 {
				return &ParseError{Format: "catalog", Cause: fmt.Errorf(
					"msgid %q has %d forms but no msgid_plural", msgid, len(tr.MsgStr))}
			}
		}
	}

	return nil
}

// CacheKey generates the canonical cache key for a locale+domain pair.
// The "{locale}:{domain}" format is shared with persistent cache adapters.
func CacheKey(locale, domain string) string {
	return locale + ":" + domain
}

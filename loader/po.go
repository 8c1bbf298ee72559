package loader

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/polingo/polingo"
)

// parsePO decodes a gettext .po file via gotext.
func parsePO(data []byte) (*polingo.Catalog, error) {
	po := gotext.NewPo()
	po.Parse(data)

	return fromDomain(po.GetDomain()), nil
}

// parseMO decodes a gettext .mo file via gotext.
func parseMO(data []byte) (*polingo.Catalog, error) {
	mo := gotext.NewMo()
	mo.Parse(data)

	return fromDomain(mo.GetDomain()), nil
}

// fromDomain converts a parsed gotext domain into a catalog snapshot,
// carrying over the header entry and the charset it declares.
func fromDomain(dom *gotext.Domain) *polingo.Catalog {
	catalog := polingo.NewCatalog()

	for key := range dom.Headers {
		catalog.Headers[key] = dom.Headers.Get(key)
	}

	if charset := charsetOf(catalog.Headers); charset != "" {
		catalog.Charset = charset
	}

	for msgid, tr := range dom.GetTranslations() {
		if msgid == "" {
			// The header entry is not a message.
			continue
		}

		catalog.Add(convertTranslation("", tr))
	}

	for msgctxt, bucket := range dom.GetCtxTranslations() {
		if msgctxt == "" {
			continue
		}

		for msgid, tr := range bucket {
			if msgid == "" {
				continue
			}

			catalog.Add(convertTranslation(msgctxt, tr))
		}
	}

	return catalog
}

func convertTranslation(msgctxt string, tr *gotext.Translation) *polingo.Translation {
	return &polingo.Translation{
		MsgID:       tr.ID,
		MsgCtxt:     msgctxt,
		MsgIDPlural: tr.PluralID,
		MsgStr:      formsOf(tr),
	}
}

// formsOf flattens gotext's index-keyed form map into an ordered slice.
// Gaps decode as empty strings, which the Translator treats as untranslated.
func formsOf(tr *gotext.Translation) polingo.MsgStr {
	max := -1
	for i := range tr.Trs {
		if i > max {
			max = i
		}
	}

	if max < 0 {
		return polingo.MsgStr{""}
	}

	forms := make(polingo.MsgStr, max+1)
	for i, s := range tr.Trs {
		if i >= 0 {
			forms[i] = s
		}
	}

	// Plural entries must expose at least two slots.
	if tr.PluralID != "" && len(forms) < 2 {
		forms = append(forms, "")
	}

	return forms
}

// charsetOf extracts the charset parameter from a Content-Type header,
// e.g. "text/plain; charset=UTF-8".
func charsetOf(headers map[string]string) string {
	contentType, ok := headers["Content-Type"]
	if !ok {
		return ""
	}

	for _, part := range strings.Split(contentType, ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, "charset="); ok {
			return strings.ToLower(strings.TrimSpace(value))
		}
	}

	return ""
}

package loader

import (
	"encoding/json"

	"github.com/polingo/polingo"
)

// parseJSON decodes the JSON catalog shape:
//
//	{
//	  "charset": "utf-8",
//	  "headers": {"Plural-Forms": "nplurals=2; plural=(n != 1);"},
//	  "translations": {
//	    "": {
//	      "Hello": {"msgid": "Hello", "msgstr": "Hola"},
//	      "{n} item": {"msgid": "{n} item", "msgid_plural": "{n} items",
//	                   "msgstr": ["{n} artículo", "{n} artículos"]}
//	    },
//	    "menu": {"File": {"msgid": "File", "msgctxt": "menu", "msgstr": "Archivo"}}
//	  }
//	}
//
// Entries may omit msgid and msgctxt; the enclosing map keys fill them in.
func parseJSON(data []byte) (*polingo.Catalog, error) {
	var catalog polingo.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, &polingo.ParseError{Format: "json", Cause: err}
	}

	normalize(&catalog)

	return &catalog, nil
}

// normalize fills defaulted fields so the catalog passes validation:
// map keys become the authoritative msgid/msgctxt of each entry.
func normalize(catalog *polingo.Catalog) {
	if catalog.Charset == "" {
		catalog.Charset = "utf-8"
	}

	if catalog.Headers == nil {
		catalog.Headers = make(map[string]string)
	}

	if catalog.Translations == nil {
		catalog.Translations = map[string]map[string]*polingo.Translation{"": {}}
	}

	for msgctxt, bucket := range catalog.Translations {
		for msgid, tr := range bucket {
			if tr == nil {
				continue
			}

			tr.MsgID = msgid
			tr.MsgCtxt = msgctxt
		}
	}
}

package loader

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/polingo/polingo"
)

// yamlTranslation mirrors the catalog entry shape with a loosely typed
// msgstr, since YAML catalogs may write it as a scalar or a sequence.
type yamlTranslation struct {
	MsgID       string `yaml:"msgid"`
	MsgCtxt     string `yaml:"msgctxt"`
	MsgIDPlural string `yaml:"msgid_plural"`
	MsgStr      any    `yaml:"msgstr"`
}

type yamlCatalog struct {
	Charset      string                                `yaml:"charset"`
	Headers      map[string]string                     `yaml:"headers"`
	Translations map[string]map[string]yamlTranslation `yaml:"translations"`
}

// parseYAML decodes a YAML catalog with the same shape as the JSON format.
func parseYAML(data []byte) (*polingo.Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &polingo.ParseError{Format: "yaml", Cause: err}
	}

	catalog := polingo.NewCatalog()
	catalog.Headers = raw.Headers
	if raw.Charset != "" {
		catalog.Charset = raw.Charset
	}

	for msgctxt, bucket := range raw.Translations {
		for msgid, entry := range bucket {
			forms, err := yamlForms(entry.MsgStr)
			if err != nil {
				return nil, &polingo.ParseError{
					Format: "yaml",
					Cause:  fmt.Errorf("msgid %q: %w", msgid, err),
				}
			}

			catalog.Add(&polingo.Translation{
				MsgID:       msgid,
				MsgCtxt:     msgctxt,
				MsgIDPlural: entry.MsgIDPlural,
				MsgStr:      forms,
			})
		}
	}

	normalize(catalog)

	return catalog, nil
}

func yamlForms(value any) (polingo.MsgStr, error) {
	switch v := value.(type) {
	case nil:
		return polingo.MsgStr{""}, nil
	case string:
		return polingo.MsgStr{v}, nil
	case []any:
		forms := make(polingo.MsgStr, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("msgstr entries must be strings, got %T", item)
			}
			forms = append(forms, s)
		}
		return forms, nil
	default:
		return nil, fmt.Errorf("msgstr must be a string or a sequence, got %T", value)
	}
}

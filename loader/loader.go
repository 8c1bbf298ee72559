// Package loader provides catalog loader implementations for polingo.
//
// Loaders resolve a (locale, domain) pair to a polingo.Catalog from the
// filesystem, an HTTP endpoint, or in-memory fixtures. Parsing of .po and
// .mo files is delegated to github.com/leonelquinteros/gotext; JSON and
// YAML catalogs are decoded and structurally validated here, so untyped
// data never reaches the Translator core.
package loader

import (
	"fmt"
	"strings"

	"github.com/polingo/polingo"
)

// TranslationLoader is the catalog loader capability consumed by the
// Translator. It is an alias of polingo.Loader for convenience.
type TranslationLoader = polingo.Loader

// Parse decodes catalog data in the named format: "po", "mo", "json",
// "yaml" or "yml". The returned catalog has passed structural validation.
func Parse(format string, data []byte) (*polingo.Catalog, error) {
	var (
		catalog *polingo.Catalog
		err     error
	)

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "po":
		catalog, err = parsePO(data)
	case "mo":
		catalog, err = parseMO(data)
	case "json":
		catalog, err = parseJSON(data)
	case "yaml", "yml":
		catalog, err = parseYAML(data)
	default:
		return nil, &polingo.ParseError{
			Format: format,
			Cause:  fmt.Errorf("unsupported catalog format"),
		}
	}

	if err != nil {
		return nil, err
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

// resolvePath expands "{locale}" and "{domain}" in a path pattern.
func resolvePath(pattern, locale, domain string) string {
	r := strings.NewReplacer("{locale}", locale, "{domain}", domain)
	return r.Replace(pattern)
}

// formatOf returns the format implied by a path's extension.
func formatOf(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return ""
}

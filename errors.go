package polingo

import "fmt"

// CatalogLoadError indicates a loader failed to produce a catalog for a
// requested locale+domain pair. It is always surfaced to the caller of
// Load or SetLocale, never swallowed.
type CatalogLoadError struct {
	Locale string
	Domain string
	Cause  error
}

func (e *CatalogLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("polingo: failed to load catalog %s: %v", CacheKey(e.Locale, e.Domain), e.Cause)
	}
	return fmt.Sprintf("polingo: failed to load catalog %s", CacheKey(e.Locale, e.Domain))
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Cause
}

// ConfigurationError indicates structurally invalid input to a constructor
// or at the start of an operation, such as an empty locale string. It is
// raised synchronously, never deferred.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "polingo: " + e.Message
}

// ParseError indicates a catalog payload failed structural validation or
// decoding at a loader boundary. Untyped data never crosses into the
// Translator core.
type ParseError struct {
	Format string // "po", "mo", "json", "yaml" or "catalog"
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("polingo: invalid %s catalog: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("polingo: invalid %s catalog", e.Format)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

package polingo

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Loader is the capability that produces catalogs. Implementations resolve
// catalogs from the filesystem, network, embedded data or test fixtures;
// the Translator does not care which. Load must return an error, not a
// sentinel catalog, when the requested pair cannot be produced.
type Loader interface {
	Load(ctx context.Context, locale, domain string) (*Catalog, error)
}

// Cache is the capability that stores loaded catalogs keyed by
// "{locale}:{domain}". Implementations must not fail: adapters backed by
// fallible stores neutralize errors internally (see cache.Redis).
//
// A Cache may be shared read/write across multiple Translators. Values are
// immutable snapshots, so concurrent Set calls to one key are a benign
// last-write-wins race.
type Cache interface {
	Get(key string) (*Catalog, bool)
	Set(key string, catalog *Catalog)
	Has(key string) bool
	Clear()
}

// noCache is the default when no cache is configured: every Load consults
// the loader directly.
type noCache struct{}

func (noCache) Get(string) (*Catalog, bool) { return nil, false }
func (noCache) Set(string, *Catalog)        {}
func (noCache) Has(string) bool             { return false }
func (noCache) Clear()                      {}

// Translator resolves translations for one active locale with an optional
// fallback. Construct it with New, call Load (or SetLocale) to populate
// catalogs, then use the synchronous lookup methods T, TP, TN and TNP.
//
// The working set of loaded catalogs belongs exclusively to the Translator
// and is distinct from the shared Cache. Lookups never fail: a missing
// translation renders the msgid itself, so the caller always has something
// displayable.
type Translator struct {
	mu       sync.RWMutex
	locale   string
	catalogs map[string]*Catalog

	fallback string
	domain   string
	loader   Loader
	cache    Cache
	debug    bool
	logger   zerolog.Logger
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithFallback sets the locale consulted when the active locale lacks a
// translation. It is immutable after construction.
func WithFallback(locale string) Option {
	return func(t *Translator) {
		t.fallback = locale
	}
}

// WithDomain sets the catalog domain. Defaults to DefaultDomain.
func WithDomain(domain string) Option {
	return func(t *Translator) {
		t.domain = domain
	}
}

// WithCache sets the catalog cache. Construct the cache once at application
// startup and pass it to every Translator that should share it.
func WithCache(cache Cache) Option {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithDebug enables debug logging of catalog loads and lookup misses that
// fall through to the literal rendering. Logging never alters returned
// values.
func WithDebug() Option {
	return func(t *Translator) {
		t.debug = true
	}
}

// WithLogger sets the sink for debug logging. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// New creates a Translator with the given active locale and loader.
// It returns a ConfigurationError when locale is empty or loader is nil.
func New(locale string, loader Loader, opts ...Option) (*Translator, error) {
	if locale == "" {
		return nil, &ConfigurationError{Message: "locale must not be empty"}
	}
	if loader == nil {
		return nil, &ConfigurationError{Message: "loader must not be nil"}
	}

	t := &Translator{
		locale:   locale,
		domain:   DefaultDomain,
		loader:   loader,
		cache:    noCache{},
		logger:   zerolog.Nop(),
		catalogs: make(map[string]*Catalog),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.cache == nil {
		t.cache = noCache{}
	}

	return t, nil
}

// Load populates the working set for each requested locale. Locales already
// loaded are a cheap no-op. For each missing locale the shared cache is
// consulted first; on a miss the loader is invoked and the result is stored
// back into the cache.
//
// Locales load concurrently. A failing locale makes Load return a
// CatalogLoadError identifying it, but does not roll back locales that
// loaded successfully; partial success is expected and tolerated.
// Concurrent Load calls for the same locale are not coalesced: both may hit
// the loader, and the idempotent cache writes make that harmless.
func (t *Translator) Load(ctx context.Context, locales ...string) error {
	for _, locale := range locales {
		if locale == "" {
			return &ConfigurationError{Message: "locale must not be empty"}
		}
	}

	var g errgroup.Group

	for _, locale := range locales {
		if t.HasLocale(locale) {
			continue
		}

		g.Go(func() error {
			return t.loadOne(ctx, locale)
		})
	}

	return g.Wait()
}

// SetLocale switches the active locale, loading its catalog on demand.
// An empty locale is a ConfigurationError. A failed load leaves the
// previously active locale in place.
//
// Overlapping SetLocale calls on one shared Translator race by design: the
// call that finishes last wins. Callers that need strict ordering must
// serialize, or use one Translator per request (see package middleware).
func (t *Translator) SetLocale(ctx context.Context, locale string) error {
	if locale == "" {
		return &ConfigurationError{Message: "locale must not be empty"}
	}

	if !t.HasLocale(locale) {
		if err := t.loadOne(ctx, locale); err != nil {
			return err
		}
	}

	t.mu.Lock()
	t.locale = locale
	t.mu.Unlock()

	return nil
}

// loadOne resolves one locale's catalog from cache or loader and adopts it
// into the working set.
func (t *Translator) loadOne(ctx context.Context, locale string) error {
	key := CacheKey(locale, t.domain)

	catalog, ok := t.cache.Get(key)
	source := "cache"

	if !ok {
		loaded, err := t.loader.Load(ctx, locale, t.domain)
		if err != nil {
			return &CatalogLoadError{Locale: locale, Domain: t.domain, Cause: err}
		}

		t.cache.Set(key, loaded)
		catalog = loaded
		source = "loader"
	}

	t.mu.Lock()
	t.catalogs[locale] = catalog
	t.mu.Unlock()

	if t.debug {
		t.logger.Debug().
			Str("key", key).
			Str("source", source).
			Int("entries", catalog.Len()).
			Msg("catalog loaded")
	}

	return nil
}

// Locale returns the currently active locale.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// Fallback returns the fallback locale, or "" when none is configured.
func (t *Translator) Fallback() string {
	return t.fallback
}

// Domain returns the catalog domain.
func (t *Translator) Domain() string {
	return t.domain
}

// HasLocale reports whether the locale's catalog is in the working set.
// Locale codes match exactly as stored; no normalization is applied here.
func (t *Translator) HasLocale(locale string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.catalogs[locale]
	return ok
}

// ClearCache clears the shared cache. The Translator's own working set is
// untouched, so already-loaded locales keep resolving without re-fetching;
// only future loads, by this or other Translators, see the empty cache.
func (t *Translator) ClearCache() {
	t.cache.Clear()
}

// T translates msgid under the default context in the active locale,
// consulting the fallback locale on a miss. When neither catalog has a
// non-empty translation the msgid itself is rendered. Placeholders are
// interpolated from vars in every case.
func (t *Translator) T(msgid string, vars ...Vars) string {
	return t.TP("", msgid, vars...)
}

// TP translates msgid under the named context, like gettext's pgettext.
func (t *Translator) TP(msgctxt, msgid string, vars ...Vars) string {
	text, found := t.lookup(msgctxt, msgid)
	if !found {
		text = msgid
		t.logMiss(msgctxt, msgid)
	}

	return Interpolate(text, mergeVars(vars))
}

// TN translates a pluralized message, like gettext's ngettext. The plural
// form index is computed from n with the catalog locale's rules. On a miss
// the literal msgid (n == 1) or msgidPlural (otherwise) is rendered.
//
// n is injected into the interpolation vars under the name "n"; a caller
// supplied "n" takes precedence.
func (t *Translator) TN(msgid, msgidPlural string, n int, vars ...Vars) string {
	return t.TNP("", msgid, msgidPlural, n, vars...)
}

// TNP is the context-scoped variant of TN, like gettext's npgettext.
func (t *Translator) TNP(msgctxt, msgid, msgidPlural string, n int, vars ...Vars) string {
	text, found := t.lookupPlural(msgctxt, msgid, n)
	if !found {
		if n == 1 {
			text = msgid
		} else {
			text = msgidPlural
		}

		t.logMiss(msgctxt, msgid)
	}

	merged := mergeVars(vars)
	if merged == nil {
		merged = Vars{}
	}
	if _, ok := merged["n"]; !ok {
		merged["n"] = n
	}

	return Interpolate(text, merged)
}

// lookup resolves msgctxt/msgid against the active catalog, then the
// fallback catalog. An entry whose msgstr is empty counts as not found.
func (t *Translator) lookup(msgctxt, msgid string) (string, bool) {
	active, fallback := t.snapshot()

	if text, ok := lookupIn(active, msgctxt, msgid); ok {
		return text, true
	}

	return lookupIn(fallback, msgctxt, msgid)
}

// lookupPlural resolves the plural form of msgctxt/msgid for n. The form
// index is computed per catalog with that catalog's locale, since the
// fallback catalog's msgstr array follows the fallback language's rules.
func (t *Translator) lookupPlural(msgctxt, msgid string, n int) (string, bool) {
	t.mu.RLock()
	activeLocale := t.locale
	active := t.catalogs[activeLocale]

	var fallback *Catalog
	if t.fallback != "" && t.fallback != activeLocale {
		fallback = t.catalogs[t.fallback]
	}
	t.mu.RUnlock()

	if text, ok := lookupPluralIn(active, msgctxt, msgid, n, activeLocale); ok {
		return text, true
	}

	return lookupPluralIn(fallback, msgctxt, msgid, n, t.fallback)
}

// snapshot returns the active and fallback catalogs under the read lock.
// Catalogs are immutable once loaded, so they are safe to use after the
// lock is released.
func (t *Translator) snapshot() (active, fallback *Catalog) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	active = t.catalogs[t.locale]
	if t.fallback != "" && t.fallback != t.locale {
		fallback = t.catalogs[t.fallback]
	}

	return active, fallback
}

func lookupIn(catalog *Catalog, msgctxt, msgid string) (string, bool) {
	tr, ok := catalog.Lookup(msgctxt, msgid)
	if !ok {
		return "", false
	}

	text := tr.Get()
	if text == "" {
		// Present but untranslated counts as not found.
		return "", false
	}

	return text, true
}

func lookupPluralIn(catalog *Catalog, msgctxt, msgid string, n int, locale string) (string, bool) {
	tr, ok := catalog.Lookup(msgctxt, msgid)
	if !ok || !tr.IsPlural() {
		return "", false
	}

	text := tr.GetN(PluralIndex(n, locale))
	if text == "" {
		return "", false
	}

	return text, true
}

func (t *Translator) logMiss(msgctxt, msgid string) {
	if !t.debug {
		return
	}

	t.logger.Debug().
		Str("locale", t.Locale()).
		Str("msgctxt", msgctxt).
		Str("msgid", msgid).
		Msg("translation missing, rendering literal")
}

// mergeVars flattens variadic vars maps; later maps win on key collisions.
// Returns nil when no values were supplied.
func mergeVars(vars []Vars) Vars {
	switch len(vars) {
	case 0:
		return nil
	case 1:
		if len(vars[0]) == 0 {
			return nil
		}

		// Copy so n-injection in TNP never mutates the caller's map.
		merged := make(Vars, len(vars[0]))
		for k, v := range vars[0] {
			merged[k] = v
		}
		return merged
	}

	merged := make(Vars)
	for _, m := range vars {
		for k, v := range m {
			merged[k] = v
		}
	}

	return merged
}

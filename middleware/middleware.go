// Package middleware provides net/http locale negotiation for polingo.
//
// A Negotiator picks the best supported locale for a request from, in
// priority order, the "lang" query parameter, the "lang" cookie, and the
// Accept-Language header. Two deployment strategies install a Translator
// into the request context:
//
//   - PerRequest builds one Translator per request. No shared mutable
//     active-locale state; this is the safe default.
//   - Shared reuses a single Translator and serializes requests around it
//     with a mutex, since the active-locale slot would otherwise race
//     between requests wanting different locales.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/polingo/polingo"
)

// LangParam is the URL query parameter carrying an explicit locale choice.
// The special value "auto" ignores the cookie and honors only the
// Accept-Language header.
const LangParam = "lang"

// LangCookie is the cookie carrying a remembered locale choice.
const LangCookie = "lang"

type translatorKey struct{}

// Negotiator matches request language preferences against the locales an
// application actually ships catalogs for.
type Negotiator struct {
	matcher language.Matcher
	locales []string
}

// NewNegotiator creates a negotiator over the supported locales, given as
// catalog locale codes ("en", "es", "pt_BR"). The first locale is the
// default when nothing matches. The returned locale strings are always
// exactly the ones passed in, so they can key catalog lookups directly.
func NewNegotiator(locales ...string) (*Negotiator, error) {
	if len(locales) == 0 {
		return nil, &polingo.ConfigurationError{Message: "negotiator needs at least one locale"}
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			return nil, &polingo.ConfigurationError{Message: "invalid locale " + locale}
		}

		tags = append(tags, tag)
	}

	return &Negotiator{
		matcher: language.NewMatcher(tags),
		locales: locales,
	}, nil
}

// Negotiate returns the supported locale best matching the request.
func (n *Negotiator) Negotiate(r *http.Request) string {
	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	preferred := make([]string, 0, 3)

	// Query and cookie values may use catalog locale codes ("pt_BR");
	// MatchStrings only parses BCP 47 tags, so normalize like NewNegotiator.
	if q != "" && !auto {
		preferred = append(preferred, strings.ReplaceAll(q, "_", "-"))
	}

	if !auto {
		if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
			preferred = append(preferred, strings.ReplaceAll(c.Value, "_", "-"))
		}
	}

	if al := r.Header.Get("Accept-Language"); al != "" {
		preferred = append(preferred, al)
	}

	_, index := language.MatchStrings(n.matcher, preferred...)

	return n.locales[index]
}

// Locales returns the supported locales in matcher order.
func (n *Negotiator) Locales() []string {
	out := make([]string, len(n.locales))
	copy(out, n.locales)
	return out
}

// Factory builds a Translator for one request. Implementations typically
// close over a shared Loader and a shared Cache so catalogs load once.
type Factory func(locale string) (*polingo.Translator, error)

// PerRequest returns middleware that builds a fresh Translator per request
// for the negotiated locale and installs it in the request context. When
// the locale's catalog cannot be loaded the request proceeds with the
// Translator's construction-time locale; lookups still render literals,
// so the page never breaks over a missing catalog.
func PerRequest(n *Negotiator, factory Factory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := n.Negotiate(r)

			t, err := factory(locale)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			// Best effort; a load failure leaves the prior locale active.
			_ = t.SetLocale(r.Context(), locale)

			next.ServeHTTP(w, r.WithContext(WithTranslator(r.Context(), t)))
		})
	}
}

// Shared returns middleware that reuses one Translator for all requests.
// Requests are serialized with a mutex for their full duration: without it,
// overlapping requests wanting different locales would race on the single
// active-locale slot. Prefer PerRequest unless the serialization cost is
// acceptable.
func Shared(n *Negotiator, t *polingo.Translator) func(http.Handler) http.Handler {
	var mu sync.Mutex

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()

			_ = t.SetLocale(r.Context(), n.Negotiate(r))

			next.ServeHTTP(w, r.WithContext(WithTranslator(r.Context(), t)))
		})
	}
}

// WithTranslator stores t in ctx for downstream handlers.
func WithTranslator(ctx context.Context, t *polingo.Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, t)
}

// FromContext returns the Translator installed by PerRequest or Shared.
func FromContext(ctx context.Context) (*polingo.Translator, bool) {
	t, ok := ctx.Value(translatorKey{}).(*polingo.Translator)
	return t, ok
}

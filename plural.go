package polingo

import "strings"

// pluralRule maps a count to a zero-based plural form index.
type pluralRule func(n int) int

// pluralRules maps base language codes to their rule family. Languages not
// listed here use the default "n != 1" two-form rule, which covers English,
// Spanish, German, Italian and most Germanic and Romance languages.
var pluralRules = map[string]pluralRule{
	// Two-form "n > 1": French, Brazilian-style Portuguese, Filipino.
	"fr":  pluralFrench,
	"pt":  pluralFrench,
	"oc":  pluralFrench,
	"tl":  pluralFrench,
	"fil": pluralFrench,

	// Three-form Slavic: Russian, Ukrainian, Belarusian, Serbian,
	// Croatian, Bosnian.
	"ru": pluralSlavic,
	"uk": pluralSlavic,
	"be": pluralSlavic,
	"sr": pluralSlavic,
	"hr": pluralSlavic,
	"bs": pluralSlavic,

	// Three-form Polish.
	"pl": pluralPolish,

	// Three-form Czech and Slovak.
	"cs": pluralCzech,
	"sk": pluralCzech,

	// No plural distinction: CJK and other isolating languages.
	"zh": pluralNone,
	"ja": pluralNone,
	"ko": pluralNone,
	"vi": pluralNone,
	"th": pluralNone,
	"id": pluralNone,
	"ms": pluralNone,
}

// PluralIndex returns the zero-based plural form index for count in the
// given locale, per CLDR-style counting rules.
//
// The locale is matched case-insensitively and region subtags are stripped,
// so "es-MX", "es_MX" and "ES" all resolve to the "es" rules. Unknown
// locales fall back to the default "n != 1" family; PluralIndex never fails.
// It is a pure function, deterministic for all integer counts.
func PluralIndex(count int, locale string) int {
	rule, ok := pluralRules[baseLang(locale)]
	if !ok {
		rule = pluralDefault
	}

	return rule(count)
}

// PluralFormCount returns the number of plural forms the locale's rule
// family distinguishes. Useful to loaders validating catalog entries.
func PluralFormCount(locale string) int {
	switch baseLang(locale) {
	case "ru", "uk", "be", "sr", "hr", "bs", "pl", "cs", "sk":
		return 3
	case "zh", "ja", "ko", "vi", "th", "id", "ms":
		return 1
	default:
		return 2
	}
}

// baseLang lowercases the locale and strips region subtags:
// "es-MX" and "es_MX" both become "es".
func baseLang(locale string) string {
	base := strings.ToLower(locale)
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}
	return base
}

// pluralDefault: index 0 if n == 1, else 1.
func pluralDefault(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}

// pluralFrench: index 0 if n is 0 or 1, else 1.
func pluralFrench(n int) int {
	if n == 0 || n == 1 {
		return 0
	}
	return 1
}

// pluralSlavic: form depends on the last digit and last two digits.
func pluralSlavic(n int) int {
	if n < 0 {
		n = -n
	}

	switch {
	case n%10 == 1 && n%100 != 11:
		return 0
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
		return 1
	default:
		return 2
	}
}

// pluralPolish: like Slavic but the first form applies only to exactly 1.
func pluralPolish(n int) int {
	if n == 1 {
		return 0
	}

	if n < 0 {
		n = -n
	}

	if n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14) {
		return 1
	}

	return 2
}

// pluralCzech: 1 / 2..4 / everything else.
func pluralCzech(n int) int {
	switch {
	case n == 1:
		return 0
	case n >= 2 && n <= 4:
		return 1
	default:
		return 2
	}
}

// pluralNone: a single form for every count.
func pluralNone(int) int {
	return 0
}

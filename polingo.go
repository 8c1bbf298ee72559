// Package polingo provides a gettext-style internationalization runtime.
//
// Polingo loads message catalogs (.po, .mo, JSON, YAML) through pluggable
// loaders, caches them, and resolves translations by message id, locale and
// grammatical context, including CLDR-style plural forms and `{name}`
// placeholder interpolation.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/polingo/polingo"
//	    "github.com/polingo/polingo/cache"
//	    "github.com/polingo/polingo/loader"
//	)
//
//	func main() {
//	    // Create a loader over an fs.FS holding locales/<locale>/<domain>.po
//	    ld := loader.NewFS(os.DirFS("locales"))
//
//	    // Create translator with an in-memory cache
//	    t, err := polingo.New("es", ld,
//	        polingo.WithFallback("en"),
//	        polingo.WithCache(cache.NewMemory(0)),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Load catalogs once; all lookups afterwards are synchronous.
//	    if err := t.Load(context.Background(), "es", "en"); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(t.T("Hello"))                         // Hola
//	    fmt.Println(t.TN("{n} item", "{n} items", 5))     // 5 artículos
//	    fmt.Println(t.TP("menu", "File"))                 // Archivo
//	}
package polingo

package loader

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/polingo/polingo"
)

// DefaultPattern locates catalogs at <locale>/<domain>.po inside the FS.
const DefaultPattern = "{locale}/{domain}.po"

// FS loads catalogs from an fs.FS, which may be a directory tree
// (os.DirFS), an embed.FS, or a test fixture (fstest.MapFS). The file
// format is chosen by the pattern's extension: .po, .mo, .json, .yaml, .yml.
type FS struct {
	fsys    fs.FS
	pattern string
}

// FSOption configures an FS loader.
type FSOption func(*FS)

// WithPattern sets the catalog path pattern; "{locale}" and "{domain}" are
// expanded per load. Defaults to DefaultPattern.
func WithPattern(pattern string) FSOption {
	return func(l *FS) {
		l.pattern = pattern
	}
}

// NewFS creates a filesystem-backed loader.
func NewFS(fsys fs.FS, opts ...FSOption) *FS {
	l := &FS{
		fsys:    fsys,
		pattern: DefaultPattern,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load implements polingo.Loader.
func (l *FS) Load(ctx context.Context, locale, domain string) (*polingo.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := resolvePath(l.pattern, locale, domain)

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	return Parse(formatOf(path), data)
}

// Verify FS implements TranslationLoader
var _ TranslationLoader = (*FS)(nil)

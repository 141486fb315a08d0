package hershey

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/hershey/cache"
)

// ErrUnknownFont is returned by Library.Font for a name not in the directory.
var ErrUnknownFont = errors.New("hershey: unknown font")

// Library gives access to the fonts of one directory, decoding each on
// first use and keeping a bounded number decoded.
//
// Library is safe for concurrent use.
type Library struct {
	dir   string
	names []string
	paths map[string]string
	opts  []LoadOption
	fonts *cache.LRU[string, *Font]
}

// OpenLibrary lists the font files in dir. No font is decoded yet. opts
// are applied to every font load; WithCacheLimit bounds the cache.
func OpenLibrary(dir string, opts ...LoadOption) (*Library, error) {
	paths, err := fontPaths(dir)
	if err != nil {
		return nil, err
	}
	cfg := newLoadConfig(opts)
	l := &Library{
		dir:   dir,
		paths: make(map[string]string, len(paths)),
		opts:  opts,
		fonts: cache.New[string, *Font](cfg.cacheLimit),
	}
	for _, p := range paths {
		name := fontName(p)
		l.names = append(l.names, name)
		l.paths[name] = p
	}
	return l, nil
}

// Dir returns the library directory.
func (l *Library) Dir() string {
	return l.dir
}

// Names returns the font names in directory order.
func (l *Library) Names() []string {
	return slices.Clone(l.names)
}

// Font returns the named font, loading it if it is not cached.
func (l *Library) Font(name string) (*Font, error) {
	path, ok := l.paths[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return l.fonts.GetOrLoad(name, func() (*Font, error) {
		Logger().Debug("hershey: loading font", "path", path)
		return LoadFile(path, l.opts...)
	})
}

// All loads every font in directory order.
func (l *Library) All() ([]*Font, error) {
	fonts := make([]*Font, 0, len(l.names))
	for _, name := range l.names {
		f, err := l.Font(name)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}
	return fonts, nil
}

// Stats reports font cache usage.
func (l *Library) Stats() cache.Stats {
	return l.fonts.Stats()
}

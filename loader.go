package fontres

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Constructor builds an unloaded Font for a font file path. It is the
// unit of registration in the extension registry.
type Constructor func(path string) (*Font, error)

var (
	loaderMu sync.RWMutex
	loaders  = map[string]Constructor{}
)

// RegisterExtension associates a file extension (without the dot,
// case-insensitive) with a font constructor. Registering an extension
// that already exists replaces the previous entry.
func RegisterExtension(ext string, c Constructor) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	loaderMu.Lock()
	defer loaderMu.Unlock()
	loaders[ext] = c
}

// Extensions returns all registered extensions, sorted.
func Extensions() []string {
	loaderMu.RLock()
	defer loaderMu.RUnlock()
	exts := make([]string, 0, len(loaders))
	for ext := range loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Open creates an unloaded Font using the constructor registered for the
// path's extension. Unregistered extensions are rejected with
// *UnsupportedExtensionError.
func Open(path string) (*Font, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	loaderMu.RLock()
	c, ok := loaders[ext]
	loaderMu.RUnlock()
	if !ok {
		return nil, &UnsupportedExtensionError{Ext: ext}
	}
	return c(path)
}

// Scalable outline font files, handled by every registered backend.
func init() {
	for _, ext := range []string{"ttf", "otf"} {
		RegisterExtension(ext, func(path string) (*Font, error) {
			return New(path), nil
		})
	}
}

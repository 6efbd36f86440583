package formats

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// Format describes one level file format. Exactly one of Parse and ParseFS
// is set: Parse gets the file contents, ParseFS gets the file system the
// level lives in so it can resolve files the level references.
type Format struct {
	Name       string
	Extensions []string
	Parse      func(data []byte) (platformer.LevelData, error)
	ParseFS    func(fsys fs.FS, name string) (platformer.LevelData, error)
}

var (
	byExt = make(map[string]Format)
	mu    sync.RWMutex
)

// Register adds a format for each of its extensions.
// Called from the parsers' init functions.
// Panics if an extension is already registered.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()

	for _, ext := range f.Extensions {
		ext = strings.ToLower(ext)
		if prev, exists := byExt[ext]; exists {
			panic(fmt.Sprintf("formats: extension %q already registered by %s", ext, prev.Name))
		}
		byExt[ext] = f
	}
}

// Lookup returns the format registered for ext (with the leading dot).
func Lookup(ext string) (Format, bool) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := byExt[strings.ToLower(ext)]
	return f, ok
}

// Extensions returns every registered extension, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

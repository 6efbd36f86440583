// Package levels finds and loads level files. It depends on platformer but
// platformer does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platformer/levels/formats"
)

// Level is a parsed level and where it came from.
type Level struct {
	platformer.LevelData
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := formats.Lookup(filepath.Ext(path)); !ok {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile loads a single level file. A level without an ID takes the file
// name without extension.
func LoadFile(path string) (Level, error) {
	ext := filepath.Ext(path)
	format, ok := formats.Lookup(ext)
	if !ok {
		return Level{}, fmt.Errorf("parsing file %s: unsupported extension %q", path, ext)
	}

	var (
		parsed platformer.LevelData
		err    error
	)
	if format.ParseFS != nil {
		// Files referenced by the level resolve relative to its directory.
		dir := filepath.Dir(path)
		if _, statErr := os.Stat(path); statErr != nil {
			return Level{}, fmt.Errorf("reading file %s: %w", path, statErr)
		}
		parsed, err = format.ParseFS(os.DirFS(dir), filepath.Base(path))
	} else {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return Level{}, fmt.Errorf("reading file %s: %w", path, readErr)
		}
		parsed, err = format.Parse(data)
	}
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}
	return Level{LevelData: parsed, FilePath: path}, nil
}

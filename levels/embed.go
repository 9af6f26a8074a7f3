package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed *.map
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "intro.map"

// Load reads and parses a map. A path to an existing file wins, then a copy
// under levels/ on disk, then the embedded set.
func Load(name string) (*Map, error) {
	data, err := ReadFile(name)
	if err != nil {
		return nil, err
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return m, nil
}

func ReadFile(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(name)
	if err != nil {
		info, err = os.Stat(DiskPath(cleanLevelPath(name)))
	}
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// List returns the embedded map names in order.
func List() []string {
	names, err := fs.Glob(LevelsFS, "*.map")
	if err != nil {
		return nil
	}
	sort.Strings(names)
	return names
}

// Save writes m to path, creating parent directories as needed.
func Save(path string, m *Map) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("levels: save %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, Format(m), 0o644); err != nil {
		return fmt.Errorf("levels: save %s: %w", path, err)
	}
	return nil
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}

// DiskPath is where the on-disk copy of an embedded map lives.
func DiskPath(name string) string {
	return filepath.Join("levels", filepath.FromSlash(cleanLevelPath(name)))
}

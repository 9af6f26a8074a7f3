package tuning

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir is where on-disk tuning overrides live, relative to the working
// directory. The game watches it for hot reload.
const Dir = "tuning"

//go:embed *.yaml
var TuningFS embed.FS

// Load returns the named tuning file. An edited copy under Dir wins over the
// shipped one so values can be changed without rebuilding.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(name)); err == nil {
		return data, nil
	}
	return TuningFS.ReadFile(embeddedName(name))
}

// ModTime reports when the on-disk copy of name last changed. It is false
// while only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(name))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// embeddedName strips a leading Dir so "tuning/physics.yaml" and
// "physics.yaml" name the same file.
func embeddedName(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func diskPath(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(embeddedName(name)))
}

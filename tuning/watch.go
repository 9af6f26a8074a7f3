package tuning

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says what an edited file feeds: physics constants or a level map.
type ChangeKind int

const (
	ChangePhysics ChangeKind = iota
	ChangeMap
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePhysics:
		return "physics"
	case ChangeMap:
		return "map"
	}
	return "unknown"
}

// Change is one edited file the game should reload between frames.
type Change struct {
	Path string
	Kind ChangeKind
}

// Classify maps a file path to the reload it needs. Files the game does not
// read report false.
func Classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangePhysics, true
	case ".map":
		return ChangeMap, true
	}
	return 0, false
}

const debounce = 100 * time.Millisecond

// Watcher reports edits under the watched directories as Changes. Editors
// tend to write a file several times per save, so repeats within the
// debounce window are dropped.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Changes)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			kind, ok := Classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Changes <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Poller finds the same Changes as Watcher by comparing modification times.
// The game falls back to it where fsnotify cannot watch the directories.
type Poller struct {
	files map[string]polledFile
	order []string
}

type polledFile struct {
	kind ChangeKind
	stat func(name string) (time.Time, bool)
	seen time.Time
}

func NewPoller() *Poller {
	return &Poller{files: make(map[string]polledFile)}
}

// Track adds a file to poll. stat returns the file's modification time, or
// false when there is no on-disk copy yet.
func (p *Poller) Track(name string, stat func(name string) (time.Time, bool)) {
	kind, ok := Classify(name)
	if !ok {
		return
	}
	if _, tracked := p.files[name]; !tracked {
		p.order = append(p.order, name)
	}
	seen, _ := stat(name)
	p.files[name] = polledFile{kind: kind, stat: stat, seen: seen}
}

// Poll returns the tracked files modified since the previous call.
func (p *Poller) Poll() []Change {
	var out []Change
	for _, name := range p.order {
		f := p.files[name]
		mod, ok := f.stat(name)
		if !ok || !mod.After(f.seen) {
			continue
		}
		f.seen = mod
		p.files[name] = f
		out = append(out, Change{Path: name, Kind: f.kind})
	}
	return out
}

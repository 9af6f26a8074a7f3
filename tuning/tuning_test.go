package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedPhysicsMatchesDefault(t *testing.T) {
	p, err := LoadPhysics()
	if err != nil {
		t.Fatalf("LoadPhysics: %v", err)
	}
	if p != Default() {
		t.Fatalf("physics.yaml drifted from Default():\n got %+v\nwant %+v", p, Default())
	}
}

func TestLoadSpecKeepsBaseForMissingKeys(t *testing.T) {
	type subset struct {
		Gravity float32 `yaml:"gravity"`
		Extra   float32 `yaml:"extra"`
	}
	got, err := LoadSpec(PhysicsFile, subset{Gravity: 1, Extra: 7})
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if got.Gravity != Default().Gravity {
		t.Fatalf("expected file gravity %v, got %v", Default().Gravity, got.Gravity)
	}
	if got.Extra != 7 {
		t.Fatalf("expected base value for missing key, got %v", got.Extra)
	}

	if _, err := LoadSpec("missing.yaml", subset{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(p *Physics)
		wantErr bool
	}{
		{"default", func(p *Physics) {}, false},
		{"zero_plane_mass", func(p *Physics) { p.PlaneMass = 0 }, true},
		{"negative_rider_mass", func(p *Physics) { p.RiderMass = -1 }, true},
		{"zero_plane_limit", func(p *Physics) { p.PlaneVelocityLimit = 0 }, true},
		{"zero_rider_y_limit", func(p *Physics) { p.RiderVelocityYLimit = 0 }, true},
		{"zero_input_limit", func(p *Physics) { p.RiderInputVelocityLimit = 0 }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Default()
			c.mutate(&p)
			if err := p.Validate(); (err != nil) != c.wantErr {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, c.wantErr)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"tuning/physics.yaml", ChangePhysics, true},
		{"a/b.YML", ChangePhysics, true},
		{"levels/first.map", ChangeMap, true},
		{"levels/first.json", 0, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			kind, ok := Classify(c.path)
			if ok != c.ok || (ok && kind != c.kind) {
				t.Fatalf("Classify(%q) = %v/%v, want %v/%v", c.path, kind, ok, c.kind, c.ok)
			}
		})
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "physics.yaml"), []byte("gravity: 10\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case c := <-w.Changes:
		if filepath.Base(c.Path) != "physics.yaml" || c.Kind != ChangePhysics {
			t.Fatalf("unexpected change %+v", c)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher change")
	}
}

func TestDiskCopyOverridesEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, ok := ModTime(PhysicsFile); ok {
		t.Fatalf("no disk copy yet, ModTime should report false")
	}

	if err := os.Mkdir("tuning", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join("tuning", PhysicsFile), []byte("gravity: 123\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := ModTime("tuning/" + PhysicsFile); !ok {
		t.Fatalf("ModTime should find the disk copy")
	}
	p, err := LoadPhysics()
	if err != nil {
		t.Fatalf("LoadPhysics: %v", err)
	}
	if p.Gravity != 123 || p.PlaneMass != Default().PlaneMass {
		t.Fatalf("expected disk gravity over defaults, got %+v", p)
	}
}

func TestPollerReportsModifiedFiles(t *testing.T) {
	dir := t.TempDir()
	physics := filepath.Join(dir, "physics.yaml")
	level := filepath.Join(dir, "intro.map")
	for _, f := range []string{physics, level} {
		if err := os.WriteFile(f, []byte("#\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	stat := func(name string) (time.Time, bool) {
		info, err := os.Stat(name)
		if err != nil {
			return time.Time{}, false
		}
		return info.ModTime(), true
	}

	p := NewPoller()
	p.Track(physics, stat)
	p.Track(level, stat)
	p.Track(filepath.Join(dir, "readme.txt"), stat)
	if got := p.Poll(); len(got) != 0 {
		t.Fatalf("nothing changed yet, got %+v", got)
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(level, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	got := p.Poll()
	if len(got) != 1 || got[0].Path != level || got[0].Kind != ChangeMap {
		t.Fatalf("expected one map change, got %+v", got)
	}
	if again := p.Poll(); len(again) != 0 {
		t.Fatalf("a change should be reported once, got %+v", again)
	}
}

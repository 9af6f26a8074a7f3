package levels

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world/component"
)

const sample = `# comment
screen 640 480
density 0.5
wrap 1
plane 10 20 40 10
rider 8 16
goal 600 0 4 480 0
obstacle 100 200 50 60 30 1 1 0
boost 200 100 40 40 0 90 5
portal 300 0 20 480 0 gravity 1

portal 400 0 20 480 15 color 0
`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.ScreenWidth != 640 || m.ScreenHeight != 480 || m.Density != 0.5 || !m.Wrap {
		t.Fatalf("unexpected settings %+v", m)
	}
	if !m.HasPlane || m.Plane.Pos != (mgl32.Vec2{10, 20}) || m.Plane.Size != (mgl32.Vec2{40, 10}) {
		t.Fatalf("unexpected plane %+v", m.Plane)
	}
	if m.RiderSize != (mgl32.Vec2{8, 16}) {
		t.Fatalf("unexpected rider size %v", m.RiderSize)
	}
	if len(m.Obstacles) != 1 || len(m.Boosts) != 1 || len(m.Portals) != 2 {
		t.Fatalf("unexpected geometry counts %d/%d/%d", len(m.Obstacles), len(m.Boosts), len(m.Portals))
	}
	o := m.Obstacles[0]
	if o.Body.Angle != 30 || !o.Body.Triangle || !o.CollidesWithPlane || o.CollidesWithRider {
		t.Fatalf("unexpected obstacle %+v", o)
	}
	if b := m.Boosts[0]; b.BoostAngle != 90 || b.BoostPower != 5 {
		t.Fatalf("unexpected boost %+v", b)
	}
	if p := m.Portals[1]; p.Kind != component.PortalColorShuffle || p.Enable || p.Body.Angle != 15 {
		t.Fatalf("unexpected portal %+v", p)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"no_plane", "screen 800 600\n", ErrNoPlane},
		{"unknown", "plane 0 0 1 1\nfloor 1\n", ErrUnknownDirective},
		{"arity", "plane 0 0 1\n", ErrArgCount},
		{"number", "plane 0 0 x 1\n", strconv.ErrSyntax},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.input))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}

	_, err := Parse(strings.NewReader("plane 0 0 1 1\nportal 0 0 1 1 0 wormhole 1\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected an error on line 2, got %v", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	again, err := Parse(bytes.NewReader(Format(m)))
	if err != nil {
		t.Fatalf("Parse(Format): %v\n%s", err, Format(m))
	}
	if !reflect.DeepEqual(m, again) {
		t.Fatalf("round trip changed the map:\n%+v\n%+v", m, again)
	}
}

func TestEmbeddedLevelsBuild(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatalf("no embedded levels")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			m, err := Load(name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			l, err := Build(name, m, tuning.Default(), 1)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if !l.Rider.Attached() || len(l.Systems()) == 0 {
				t.Fatalf("built level is not ready to run")
			}
			for i := 0; i < 30; i++ {
				l.Update(1.0 / 60)
			}
			if l.Plane.Crashed() {
				t.Fatalf("plane should survive the first half second")
			}
		})
	}
}

func TestSaveAndFromLevel(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l, err := Build("sample", m, tuning.Default(), 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 10; i++ {
		l.Update(1.0 / 60)
	}
	l.Reset()

	path := filepath.Join(t.TempDir(), "out", "sample.map")
	if err := Save(path, FromLevel(l)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(m, back) {
		t.Fatalf("saved map differs:\n%+v\n%+v", m, back)
	}

	if _, ok := ModTime(path); !ok {
		t.Fatalf("ModTime should see the saved map")
	}
	if _, ok := ModTime("never-saved.map"); ok {
		t.Fatalf("ModTime should report false without a disk copy")
	}
}

func TestBuildRejectsMissingPlane(t *testing.T) {
	if _, err := Build("empty", &Map{}, tuning.Default(), 1); !errors.Is(err, ErrNoPlane) {
		t.Fatalf("expected ErrNoPlane, got %v", err)
	}
}

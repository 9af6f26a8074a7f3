package levels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world/component"
)

var (
	ErrNoPlane          = errors.New("levels: map has no plane")
	ErrUnknownDirective = errors.New("unknown directive")
	ErrArgCount         = errors.New("wrong number of arguments")
)

// Map is a level as stored on disk: static geometry plus spawn positions.
type Map struct {
	ScreenWidth  float32
	ScreenHeight float32
	Density      float32
	Wrap         bool

	Plane     geom.OrientedRect
	HasPlane  bool
	RiderSize mgl32.Vec2
	Goal      geom.OrientedRect

	Obstacles []component.Obstacle
	Boosts    []component.BoostPad
	Portals   []component.Portal
}

const (
	defaultScreenWidth  = 800
	defaultScreenHeight = 600
)

var defaultRiderSize = mgl32.Vec2{10, 20}

// directive arity, not counting the keyword
var arity = map[string]int{
	"screen":   2,
	"density":  1,
	"wrap":     1,
	"plane":    4,
	"rider":    2,
	"goal":     5,
	"obstacle": 8,
	"boost":    7,
	"portal":   7,
}

// Parse reads the line-oriented map format. Blank lines and lines starting
// with # are ignored.
func Parse(r io.Reader) (*Map, error) {
	m := &Map{
		ScreenWidth:  defaultScreenWidth,
		ScreenHeight: defaultScreenHeight,
		RiderSize:    defaultRiderSize,
	}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := m.parseLine(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("levels: parse line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read: %w", err)
	}
	if !m.HasPlane {
		return nil, ErrNoPlane
	}
	return m, nil
}

func (m *Map) parseLine(fields []string) error {
	kw, args := fields[0], fields[1:]
	want, ok := arity[kw]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownDirective, kw)
	}
	if len(args) != want {
		return fmt.Errorf("%s: %w: want %d, got %d", kw, ErrArgCount, want, len(args))
	}

	// The last field of portal lines is a word, the rest are numbers.
	numeric := args
	if kw == "portal" {
		numeric = args[:5]
	}
	v := make([]float32, len(numeric))
	for i, s := range numeric {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("%s: argument %d: %w", kw, i+1, err)
		}
		v[i] = float32(f)
	}

	switch kw {
	case "screen":
		m.ScreenWidth, m.ScreenHeight = v[0], v[1]
	case "density":
		m.Density = v[0]
	case "wrap":
		m.Wrap = v[0] != 0
	case "plane":
		m.Plane = geom.NewRect(v[0], v[1], v[2], v[3])
		m.HasPlane = true
	case "rider":
		m.RiderSize = mgl32.Vec2{v[0], v[1]}
	case "goal":
		m.Goal = rectArgs(v)
	case "obstacle":
		body := rectArgs(v)
		body.Triangle = v[5] != 0
		m.Obstacles = append(m.Obstacles, component.Obstacle{
			Body:              body,
			CollidesWithPlane: v[6] != 0,
			CollidesWithRider: v[7] != 0,
		})
	case "boost":
		m.Boosts = append(m.Boosts, component.BoostPad{
			Body:       rectArgs(v),
			BoostAngle: v[5],
			BoostPower: v[6],
		})
	case "portal":
		kind, err := parsePortalKind(args[5])
		if err != nil {
			return err
		}
		enable, err := strconv.ParseBool(args[6])
		if err != nil {
			return fmt.Errorf("portal: enable: %w", err)
		}
		m.Portals = append(m.Portals, component.Portal{Body: rectArgs(v), Kind: kind, Enable: enable})
	}
	return nil
}

func rectArgs(v []float32) geom.OrientedRect {
	r := geom.NewRect(v[0], v[1], v[2], v[3])
	r.Angle = v[4]
	return r
}

func parsePortalKind(s string) (component.PortalKind, error) {
	switch s {
	case component.PortalGravityInvert.String():
		return component.PortalGravityInvert, nil
	case component.PortalColorShuffle.String():
		return component.PortalColorShuffle, nil
	}
	return 0, fmt.Errorf("portal: unknown kind %q", s)
}

// Format writes m in the map format. Parse(Format(m)) gives back m.
func Format(m *Map) []byte {
	var buf bytes.Buffer
	if m == nil {
		return nil
	}
	fmt.Fprintf(&buf, "screen %s %s\n", num(m.ScreenWidth), num(m.ScreenHeight))
	fmt.Fprintf(&buf, "density %s\n", num(m.Density))
	fmt.Fprintf(&buf, "wrap %d\n", flag(m.Wrap))
	if m.HasPlane {
		p := m.Plane
		fmt.Fprintf(&buf, "plane %s %s %s %s\n", num(p.Pos.X()), num(p.Pos.Y()), num(p.Size.X()), num(p.Size.Y()))
	}
	fmt.Fprintf(&buf, "rider %s %s\n", num(m.RiderSize.X()), num(m.RiderSize.Y()))
	if !m.Goal.Degenerate() {
		fmt.Fprintf(&buf, "goal %s\n", rectFields(m.Goal))
	}
	for _, o := range m.Obstacles {
		fmt.Fprintf(&buf, "obstacle %s %d %d %d\n", rectFields(o.Body), flag(o.Body.Triangle), flag(o.CollidesWithPlane), flag(o.CollidesWithRider))
	}
	for _, b := range m.Boosts {
		fmt.Fprintf(&buf, "boost %s %s %s\n", rectFields(b.Body), num(b.BoostAngle), num(b.BoostPower))
	}
	for _, p := range m.Portals {
		fmt.Fprintf(&buf, "portal %s %s %d\n", rectFields(p.Body), p.Kind, flag(p.Enable))
	}
	return buf.Bytes()
}

func rectFields(r geom.OrientedRect) string {
	return strings.Join([]string{
		num(r.Pos.X()), num(r.Pos.Y()), num(r.Size.X()), num(r.Size.Y()), num(r.Angle),
	}, " ")
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

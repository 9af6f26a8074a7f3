package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestContainsPoint(t *testing.T) {
	cases := []struct {
		name     string
		rect     OrientedRect
		p        mgl32.Vec2
		centered bool
		want     bool
	}{
		{"inside", NewRect(10, 20, 40, 20), mgl32.Vec2{15, 25}, false, true},
		{"left_edge_inclusive", NewRect(10, 20, 40, 20), mgl32.Vec2{10, 25}, false, true},
		{"right_edge_exclusive", NewRect(10, 20, 40, 20), mgl32.Vec2{50, 25}, false, false},
		{"outside", NewRect(10, 20, 40, 20), mgl32.Vec2{5, 25}, false, false},
		{"centered_origin", NewRect(10, 20, 40, 20), mgl32.Vec2{-5, 15}, true, true},
		{"centered_outside", NewRect(10, 20, 40, 20), mgl32.Vec2{45, 25}, true, false},
		{"negative_height", NewRect(0, 10, 10, -10), mgl32.Vec2{5, 5}, false, true},
		{"negative_height_below", NewRect(0, 10, 10, -10), mgl32.Vec2{5, 15}, false, false},
		{"zero_size", NewRect(0, 0, 0, 10), mgl32.Vec2{0, 5}, false, false},
		{"triangle_solid_half", OrientedRect{Size: mgl32.Vec2{10, 10}, Triangle: true}, mgl32.Vec2{8, 8}, false, true},
		{"triangle_empty_half", OrientedRect{Size: mgl32.Vec2{10, 10}, Triangle: true}, mgl32.Vec2{2, 2}, false, false},
		{"rotated_90_tall", OrientedRect{Pos: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{40, 10}, Angle: 90}, mgl32.Vec2{20, -10}, false, true},
		{"rotated_90_old_extent", OrientedRect{Pos: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{40, 10}, Angle: 90}, mgl32.Vec2{2, 5}, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ContainsPoint(c.rect, c.p, c.centered); got != c.want {
				t.Fatalf("ContainsPoint(%+v, %v, %v) = %v, want %v", c.rect, c.p, c.centered, got, c.want)
			}
		})
	}
}

func TestContainsPointRotationInvariant(t *testing.T) {
	base := NewRect(10, 20, 40, 20)
	points := []mgl32.Vec2{{15, 25}, {48, 38}, {30, 30}, {11, 21}}
	angles := []float32{0, 15, 45, 90, 135, 200, -30, 359}

	for _, p := range points {
		if !ContainsPoint(base, p, false) {
			t.Fatalf("point %v should be inside unrotated rect", p)
		}
		for _, a := range angles {
			r := base
			r.Angle = a
			world := RotatePoint(p, r.Center(), a)
			if !ContainsPoint(r, world, false) {
				t.Fatalf("point %v rotated by %v to %v fell outside", p, a, world)
			}
		}
	}
}

func TestCorners(t *testing.T) {
	r := OrientedRect{Pos: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{10, 20}, Angle: 90}
	got := r.Corners()
	// rotating 90 degrees about (5,10) sends top-left (0,0) to (15,5)
	want := [4]mgl32.Vec2{{15, 5}, {15, 15}, {-5, 5}, {-5, 15}}
	for i := range want {
		if !got[i].ApproxEqualThreshold(want[i], 1e-4) {
			t.Fatalf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}

	flat := NewRect(1, 2, 3, 4).Corners()
	if flat[cornerBR] != (mgl32.Vec2{4, 6}) {
		t.Fatalf("unrotated bottom-right = %v", flat[cornerBR])
	}
}

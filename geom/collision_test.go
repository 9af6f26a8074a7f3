package geom

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		p1, p2, p3, p4 mgl32.Vec2
		want           bool
		point          mgl32.Vec2
	}{
		{"cross", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10}, mgl32.Vec2{0, 10}, mgl32.Vec2{10, 0}, true, mgl32.Vec2{5, 5}},
		{"touch_endpoint", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{10, -5}, mgl32.Vec2{10, 5}, true, mgl32.Vec2{10, 0}},
		{"miss", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{11, -5}, mgl32.Vec2{11, 5}, false, mgl32.Vec2{}},
		{"parallel", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{0, 1}, mgl32.Vec2{10, 1}, false, mgl32.Vec2{}},
		{"coincident", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, mgl32.Vec2{2, 0}, mgl32.Vec2{8, 0}, false, mgl32.Vec2{}},
		{"zero_length", mgl32.Vec2{3, 3}, mgl32.Vec2{3, 3}, mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10}, false, mgl32.Vec2{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, ok := SegmentsIntersect(c.p1, c.p2, c.p3, c.p4)
			if ok != c.want {
				t.Fatalf("expected intersect=%v, got %v", c.want, ok)
			}
			if ok && !p.ApproxEqualThreshold(c.point, 1e-4) {
				t.Fatalf("expected point %v, got %v", c.point, p)
			}
		})
	}
}

func TestRectsColliding(t *testing.T) {
	tri := OrientedRect{Size: mgl32.Vec2{10, 10}, Triangle: true}
	cases := []struct {
		name string
		a, b OrientedRect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"gap", NewRect(0, 0, 10, 10), NewRect(12, 0, 10, 10), false},
		{"far", NewRect(0, 0, 10, 10), NewRect(500, 0, 10, 10), false},
		{"nested", NewRect(0, 0, 100, 100), NewRect(40, 40, 10, 10), true},
		{"rotated_reaches_gap", NewRect(0, 0, 10, 10), OrientedRect{Pos: mgl32.Vec2{12, 0}, Size: mgl32.Vec2{10, 10}, Angle: 45}, true},
		{"triangle_empty_corner", tri, NewRect(1, 1, 2, 2), false},
		{"triangle_nested_solid", tri, NewRect(7, 7, 2, 2), true},
		{"triangle_hypotenuse_crossing", tri, NewRect(3, 3, 5, 5), true},
		{"flipped_height", OrientedRect{Pos: mgl32.Vec2{0, 20}, Size: mgl32.Vec2{10, -10}}, NewRect(2, 5, 4, 8), true},
		{"degenerate", NewRect(0, 0, 0, 0), NewRect(-5, -5, 10, 10), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, got := RectsColliding(c.a, c.b); got != c.want {
				t.Fatalf("RectsColliding(a, b) = %v, want %v", got, c.want)
			}
			if _, got := RectsColliding(c.b, c.a); got != c.want {
				t.Fatalf("RectsColliding(b, a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectsCollidingContactPoint(t *testing.T) {
	p, ok := RectsColliding(NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10))
	if !ok {
		t.Fatal("expected collision")
	}
	// a's top edge cannot cross b; its right edge meets b's top edge first.
	if !p.ApproxEqualThreshold(mgl32.Vec2{10, 5}, 1e-4) {
		t.Fatalf("contact point = %v, want (10,5)", p)
	}
}

func randomRect(rng *rand.Rand) OrientedRect {
	r := OrientedRect{
		Pos:      mgl32.Vec2{rng.Float32()*200 - 100, rng.Float32()*200 - 100},
		Size:     mgl32.Vec2{rng.Float32()*60 + 1, rng.Float32()*60 + 1},
		Angle:    rng.Float32()*720 - 360,
		Triangle: rng.Intn(4) == 0,
	}
	if rng.Intn(5) == 0 {
		r.Size[1] = -r.Size[1]
	}
	return r
}

func TestRectsCollidingSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		a := randomRect(rng)
		b := randomRect(rng)
		_, ab := RectsColliding(a, b)
		_, ba := RectsColliding(b, a)
		if ab != ba {
			t.Fatalf("asymmetric result for %+v / %+v: %v vs %v", a, b, ab, ba)
		}
	}
}

func TestBroadPhaseSound(t *testing.T) {
	t.Run("far_apart_agrees_with_brute_force", func(t *testing.T) {
		a := NewRect(0, 0, 10, 10)
		for _, dx := range []float32{41, 100, -60} {
			b := OrientedRect{Pos: mgl32.Vec2{dx, 3}, Size: mgl32.Vec2{10, 10}, Angle: 45}
			if !BroadPhaseReject(a, b) {
				t.Fatalf("expected reject at dx=%v", dx)
			}
			if _, hit := edgesColliding(a, b); hit {
				t.Fatalf("brute force found a hit the broad phase rejected at dx=%v", dx)
			}
		}
	})

	t.Run("just_inside_bound_not_rejected", func(t *testing.T) {
		a := NewRect(0, 0, 10, 10)
		b := NewRect(39.5, 0, 10, 10)
		if BroadPhaseReject(a, b) {
			t.Fatal("rect inside the bound must not be rejected")
		}
		b.Pos[0] = 40
		if BroadPhaseReject(a, b) {
			t.Fatal("rect exactly on the bound must not be rejected")
		}
	})

	t.Run("random_pairs_never_false_negative", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 5000; i++ {
			a := randomRect(rng)
			b := randomRect(rng)
			if !BroadPhaseReject(a, b) {
				continue
			}
			if _, hit := edgesColliding(a, b); hit {
				t.Fatalf("broad phase rejected colliding pair %+v / %+v", a, b)
			}
		}
	})
}

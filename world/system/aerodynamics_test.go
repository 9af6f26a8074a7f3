package system

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestAerodynamicCoefficients(t *testing.T) {
	cases := []struct {
		name string
		deg  float32
		// vertical lift, vertical drag, horizontal lift, horizontal drag
		want [4]float32
	}{
		{"level", 0, [4]float32{2, 0, 0, 0}},
		{"diagonal", 45, [4]float32{1, 1, 1, 1}},
		{"vertical", 90, [4]float32{0, 0, 0, 2}},
		{"negative_diagonal", -45, [4]float32{1, -1, -1, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := [4]float32{
				VerticalLiftCoeff(c.deg),
				VerticalDragCoeff(c.deg),
				HorizontalLiftCoeff(c.deg),
				HorizontalDragCoeff(c.deg),
			}
			for i := range got {
				if !approx(got[i], c.want[i], 1e-5) {
					t.Fatalf("coefficient %d: expected %v, got %v", i, c.want[i], got[i])
				}
			}
		})
	}
}

func TestQuadrantSign(t *testing.T) {
	cases := []struct {
		deg  float32
		want float32
	}{
		{10, 1},
		{100, -1},
		{190, 1},
		{280, -1},
		{-10, -1},
		{-100, 1},
		{370, 1},
	}
	for _, c := range cases {
		if got := quadrantSign(c.deg); got != c.want {
			t.Fatalf("quadrantSign(%v): expected %v, got %v", c.deg, c.want, got)
		}
	}
}

func TestAerodynamicsDirections(t *testing.T) {
	cases := []struct {
		name   string
		deg    float32
		v      mgl32.Vec2
		checkX func(float32) bool
		checkY func(float32) bool
	}{
		{
			// Falling flat: lift pushes up, nothing sideways.
			name:   "falling_flat",
			deg:    0,
			v:      mgl32.Vec2{0, 100},
			checkX: func(x float32) bool { return approx(x, 0, 1e-3) },
			checkY: func(y float32) bool { return y < 0 },
		},
		{
			name:   "rising_flat",
			deg:    0,
			v:      mgl32.Vec2{0, -100},
			checkX: func(x float32) bool { return approx(x, 0, 1e-3) },
			checkY: func(y float32) bool { return y > 0 },
		},
		{
			// Flying right nose down: horizontal drag slows the plane.
			name:   "forward_pitched",
			deg:    30,
			v:      mgl32.Vec2{100, 0},
			checkX: func(x float32) bool { return x < 0 },
			checkY: func(y float32) bool { return y > 0 },
		},
		{
			name:   "backward_pitched",
			deg:    30,
			v:      mgl32.Vec2{-100, 0},
			checkX: func(x float32) bool { return x > 0 },
			checkY: func(y float32) bool { return y < 0 },
		},
		{
			name:   "still",
			deg:    45,
			v:      mgl32.Vec2{},
			checkX: func(x float32) bool { return x == 0 },
			checkY: func(y float32) bool { return y == 0 },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			acc := Aerodynamics(c.deg, 1, 1, c.v)
			if !c.checkX(acc.X()) || !c.checkY(acc.Y()) {
				t.Fatalf("unexpected acceleration %v", acc)
			}
		})
	}
}

func TestAerodynamicsMagnitude(t *testing.T) {
	// Flat wing of area 2 falling at 10 through density 0.5:
	// 2 * 100 * 0.5 * |1 - cos(180)| * 0.5 = 100, pushing up.
	acc := Aerodynamics(0, 2, 0.5, mgl32.Vec2{0, 10})
	if !approx(acc.Y(), -100, 1e-3) {
		t.Fatalf("expected lift -100, got %v", acc.Y())
	}
}

package common

import "testing"

func TestWrapDegrees(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{360, 360},
		{-360, -360},
		{370, 10},
		{-370, -10},
		{725, 5},
	}
	for _, c := range cases {
		if got := WrapDegrees(c.in); got != c.want {
			t.Fatalf("WrapDegrees(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
	}
	for _, c := range cases {
		if got := NormalizeDegrees(c.in); got != c.want {
			t.Fatalf("NormalizeDegrees(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0, 10, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Approach(9, 10, 3); got != 10 {
		t.Fatalf("expected to stop at target, got %v", got)
	}
	if got := Approach(-2, -10, 5); got != -7 {
		t.Fatalf("expected -7, got %v", got)
	}
}

func TestClampAndSign(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp[float32](1.5, 0, 3) != 1.5 {
		t.Fatalf("Clamp out of range")
	}
	if Sign[float32](-0.1) != -1 || Sign(0) != 0 || Sign(7) != 1 {
		t.Fatalf("Sign wrong")
	}
}

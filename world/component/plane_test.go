package component

import "testing"

func TestCrashBucketFor(t *testing.T) {
	cases := []struct {
		name  string
		speed float32
		want  int
	}{
		{"at_rest", 0, 0},
		{"slow", 10, 1},
		{"steady", 20, 2},
		{"half", 50, 4},
		{"fast", 80, 6},
		{"just_under_cap", 89, 6},
		{"near_limit", 95, 7},
		{"at_limit", 100, 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CrashBucketFor(c.speed, 100); got != c.want {
				t.Fatalf("CrashBucketFor(%v): expected %d, got %d", c.speed, c.want, got)
			}
		})
	}
}

func TestRiderNilStateIsNothing(t *testing.T) {
	var r Rider
	if r.Attached() || r.Detached() || r.Crashed() {
		t.Fatalf("a rider without a state should not report any state")
	}
}

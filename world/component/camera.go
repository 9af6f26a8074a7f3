package component

// Camera tracks the horizontal scroll. The view never moves vertically.
type Camera struct {
	X float32
}

package component

// Input stores the signals sampled for one frame. Direction is in [-1, 1];
// the *Pressed fields are true only on the frame the button went down.
type Input struct {
	Direction    float32
	Jump         bool
	JumpPressed  bool
	Boost        bool
	BoostPressed bool
	Pause        bool
	Restart      bool
}

package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
	"github.com/vmihailenco/msgpack/v5"
)

// Version is bumped whenever the recorded frame layout changes.
const Version = 1

var ErrVersion = errors.New("replay: unsupported version")

// Frame is one recorded update: the delta the game used and the input it
// sampled.
type Frame struct {
	Dt    float32         `msgpack:"dt"`
	Input component.Input `msgpack:"in"`
}

// Replay is a recorded run of one level. Playing it into a freshly built
// level with the same seed reproduces the run exactly.
type Replay struct {
	Version int     `msgpack:"v"`
	Level   string  `msgpack:"level"`
	Seed    uint64  `msgpack:"seed"`
	Frames  []Frame `msgpack:"frames"`
}

type Recorder struct {
	replay Replay
}

func NewRecorder(level string, seed uint64) *Recorder {
	return &Recorder{replay: Replay{Version: Version, Level: level, Seed: seed}}
}

// Record appends a frame. Call it with exactly what was passed to Step.
func (r *Recorder) Record(dt float32, in component.Input) {
	if r == nil {
		return
	}
	r.replay.Frames = append(r.replay.Frames, Frame{Dt: dt, Input: in})
}

func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.replay.Frames)
}

func (r *Recorder) Replay() *Replay {
	if r == nil {
		return nil
	}
	out := r.replay
	out.Frames = append([]Frame(nil), r.replay.Frames...)
	return &out
}

// Player feeds recorded frames back one at a time.
type Player struct {
	replay *Replay
	next   int
}

func NewPlayer(rp *Replay) *Player {
	return &Player{replay: rp}
}

// Next returns the next frame, or false once the recording is exhausted.
func (p *Player) Next() (Frame, bool) {
	if p == nil || p.replay == nil || p.next >= len(p.replay.Frames) {
		return Frame{}, false
	}
	f := p.replay.Frames[p.next]
	p.next++
	return f, true
}

func (p *Player) Done() bool {
	return p == nil || p.replay == nil || p.next >= len(p.replay.Frames)
}

// Play runs every recorded frame through l.
func Play(l *world.Level, rp *Replay) {
	p := NewPlayer(rp)
	for f, ok := p.Next(); ok; f, ok = p.Next() {
		l.Step(f.Input, f.Dt)
	}
}

func Encode(w io.Writer, rp *Replay) error {
	if err := msgpack.NewEncoder(w).Encode(rp); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (*Replay, error) {
	var rp Replay
	if err := msgpack.NewDecoder(r).Decode(&rp); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rp.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rp.Version)
	}
	return &rp, nil
}

func Save(path string, rp *Replay) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: save %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, rp); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("replay: save %s: %w", path, err)
	}
	return f.Close()
}

func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

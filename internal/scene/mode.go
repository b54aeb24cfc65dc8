package scene

import "github.com/sevenlucas7/christmas-memory-tree/internal/layout"

// Mode selects which layout the animated transforms chase.
type Mode int

const (
	ModeScattered Mode = iota
	ModeFormation
)

func (m Mode) String() string {
	if m.normalized() == ModeFormation {
		return "formation"
	}
	return "scattered"
}

// normalized maps any out-of-range value to ModeScattered so a corrupt
// mode degrades to the safe layout instead of crashing the blend.
func (m Mode) normalized() Mode {
	if m == ModeFormation {
		return ModeFormation
	}
	return ModeScattered
}

// blend is the target layout blend factor: 1 chases the tree, 0 the scatter.
func (m Mode) blend() float64 {
	if m.normalized() == ModeFormation {
		return 1
	}
	return 0
}

// Frame is the per-tick input handed down by the window loop.
type Frame struct {
	Elapsed   float64 // seconds since scene start
	Delta     float64 // seconds since last tick
	CameraPos layout.Vec
}

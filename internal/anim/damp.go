// Package anim provides the framerate independent smoothing primitive that
// drives every animated transform in the scene.
package anim

import (
	"math"

	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
)

// Damp moves current toward target by an exponential decay step. The decay
// is a function of rate*dt only, so splitting a frame into sub-steps lands
// on the same value as one big step; variable frame times cannot cause
// visible speed changes. Half-life of the remaining distance is ln2/rate.
func Damp(current, target, rate, dt float64) float64 {
	return target + (current-target)*math.Exp(-rate*dt)
}

// DampVec applies Damp independently per axis.
func DampVec(current, target layout.Vec, rate, dt float64) layout.Vec {
	return layout.Vec{
		X: Damp(current.X, target.X, rate, dt),
		Y: Damp(current.Y, target.Y, rate, dt),
		Z: Damp(current.Z, target.Z, rate, dt),
	}
}

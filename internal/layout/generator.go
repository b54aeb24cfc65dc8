// Package layout computes the static target positions for both scene
// layouts: the conical golden-angle spiral ("tree") and the spherical
// random scatter. All functions are pure; randomness comes from a caller
// supplied source so placements can be pinned in tests.
package layout

import (
	"math"
	"math/rand"
)

// GoldenAngle is the angular step between consecutive spiral items,
// pi*(3-sqrt5) = 137.5077... degrees in radians. Consecutive items never
// line up, which packs the spiral densely without visible spokes.
const GoldenAngle = 2.3999632297286533

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Vec is a point in scene space.
type Vec struct {
	X, Y, Z float64
}

// Jitter draws the per-item radial jitter factor in [0.8, 1.2). It is
// sampled exactly once per item at creation and frozen afterwards.
func Jitter(r *rand.Rand) float64 {
	return 0.8 + r.Float64()*0.4
}

// TreePosition places item index (0-based) of total on the spiral cone.
// The radius shrinks linearly with height and is scaled by the item's
// frozen jitter factor; the cone is vertically centered on y=0.
// total must be > 0; callers with an empty collection generate nothing.
func TreePosition(index, total int, maxRadius, height, jitter float64) Vec {
	angle := float64(index) * GoldenAngle
	h := float64(index) / float64(total)
	radius := maxRadius * (1 - h) * jitter

	return Vec{
		X: math.Cos(angle) * radius,
		Y: h*height - height/2,
		Z: math.Sin(angle) * radius,
	}
}

// RandomInSphere draws a point uniformly distributed by volume inside a
// sphere of the given radius. The cube root on the radial coordinate is
// what makes the density uniform; a linear radius would crowd the center.
func RandomInSphere(r *rand.Rand, radius float64) Vec {
	theta := 2 * math.Pi * r.Float64()
	phi := math.Acos(2*r.Float64() - 1)
	rad := radius * math.Cbrt(r.Float64())

	sinPhi := math.Sin(phi)
	return Vec{
		X: rad * sinPhi * math.Cos(theta),
		Y: rad * sinPhi * math.Sin(theta),
		Z: rad * math.Cos(phi),
	}
}

// Lerp interpolates component-wise between a and b; t=0 yields a, t=1 b.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

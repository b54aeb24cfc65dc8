package anim

import (
	"math"
	"testing"

	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
)

func TestDamp_StepSizeIndependence(t *testing.T) {
	// Splitting one interval into arbitrary sub-steps must land on the
	// same value as a single step; this is what makes variable frame
	// rates invisible.
	const (
		current = 10.0
		target  = -3.0
		rate    = 1.5
		total   = 0.4
	)

	want := Damp(current, target, rate, total)

	tests := []struct {
		name  string
		steps int
	}{
		{"Two halves", 2},
		{"Three thirds", 3},
		{"Sixty ticks", 60},
		{"Thousand ticks", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := current
			for i := 0; i < tt.steps; i++ {
				v = Damp(v, target, rate, total/float64(tt.steps))
			}
			if math.Abs(v-want) > 1e-9 {
				t.Errorf("%d sub-steps = %v, single step = %v", tt.steps, v, want)
			}
		})
	}
}

func TestDamp_UnevenSplit(t *testing.T) {
	const rate = 2.0
	want := Damp(5, 1, rate, 0.5)

	v := Damp(5, 1, rate, 0.37)
	v = Damp(v, 1, rate, 0.13)
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("uneven split = %v, want %v", v, want)
	}
}

func TestDamp_MonotonicConvergence(t *testing.T) {
	tests := []struct {
		name          string
		current, rate float64
		dt            float64
	}{
		{"From above", 8, 1.5, 1.0 / 60},
		{"From below", -8, 1.5, 1.0 / 60},
		{"Slow rate", 8, 0.01, 1.0 / 60},
		{"Huge step", 8, 1.5, 10},
	}

	const target = 2.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Damp(tt.current, target, tt.rate, tt.dt)
			before := math.Abs(tt.current - target)
			after := math.Abs(got - target)
			if after >= before {
				t.Errorf("distance grew: %v -> %v", before, after)
			}
			// Never overshoots either.
			if (tt.current-target)*(got-target) < 0 {
				t.Errorf("overshot target: %v -> %v", tt.current, got)
			}
		})
	}
}

func TestDamp_HalfLife(t *testing.T) {
	const rate = 1.5
	got := Damp(0, 1, rate, math.Ln2/rate)
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("after one half-life got %v, want 0.5", got)
	}
}

func TestDamp_ZeroDelta(t *testing.T) {
	if got := Damp(7, 2, 1.5, 0); got != 7 {
		t.Errorf("zero dt moved the value: %v", got)
	}
}

func TestDampVec_PerAxis(t *testing.T) {
	cur := layout.Vec{X: 1, Y: -2, Z: 4}
	tgt := layout.Vec{X: 0, Y: 3, Z: 4}
	const rate, dt = 1.2, 0.016

	got := DampVec(cur, tgt, rate, dt)
	want := layout.Vec{
		X: Damp(cur.X, tgt.X, rate, dt),
		Y: Damp(cur.Y, tgt.Y, rate, dt),
		Z: Damp(cur.Z, tgt.Z, rate, dt),
	}
	if got != want {
		t.Errorf("DampVec = %+v, want %+v", got, want)
	}
	if got.Z != 4 {
		t.Errorf("axis already at target moved: %v", got.Z)
	}
}

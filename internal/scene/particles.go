package scene

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/anim"
	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
)

// particleDampRate tunes how calmly particles converge on their layout
// target; half-life of the remaining distance is about 0.46s.
const particleDampRate = 1.5

// particle is one glowing speck. Both targets and the motion parameters
// are frozen at startup; the particle count never changes at runtime.
type particle struct {
	tree    layout.Vec
	scatter layout.Vec
	speed   float64
	phase   float64
	scale   float64
}

// ParticleConfig sizes the particle field.
type ParticleConfig struct {
	Count         int
	TreeRadius    float64
	TreeHeight    float64
	ScatterRadius float64
	MinSpeed      float64
	MaxSpeed      float64
	MinScale      float64
	MaxScale      float64
}

// ParticleField animates the full particle set and writes every transform
// into one shared instanced batch, submitted once per frame.
type ParticleField struct {
	particles []particle
	pos       []layout.Vec // persistent smoothed position, one per particle
	batch     *Batch
}

func NewParticleField(cfg ParticleConfig, rng *rand.Rand) *ParticleField {
	f := &ParticleField{
		particles: make([]particle, cfg.Count),
		pos:       make([]layout.Vec, cfg.Count),
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.tree = layout.TreePosition(i, cfg.Count, cfg.TreeRadius, cfg.TreeHeight, layout.Jitter(rng))
		p.scatter = layout.RandomInSphere(rng, cfg.ScatterRadius)
		p.speed = cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
		p.phase = rng.Float64() * 2 * math.Pi
		p.scale = cfg.MinScale + rng.Float64()*(cfg.MaxScale-cfg.MinScale)
		f.pos[i] = p.scatter
	}

	return f
}

// AttachBatch hands the field its draw batch. Until this happens every
// Update is a silent skip; the window creates the batch only after the
// GL context is up.
func (f *ParticleField) AttachBatch(b *Batch) {
	f.batch = b
}

// Update damps every particle toward the current layout target and writes
// all transforms into the batch. Rotation is not damped: it is a direct
// oscillation so the specks slowly tumble regardless of layout.
func (f *ParticleField) Update(fr Frame, mode Mode) {
	if f.batch == nil || len(f.batch.transforms) < len(f.particles) {
		return
	}

	t := mode.blend()
	for i := range f.particles {
		p := &f.particles[i]

		target := layout.Lerp(p.scatter, p.tree, t)
		f.pos[i] = anim.DampVec(f.pos[i], target, particleDampRate, fr.Delta)

		rx := math.Sin(fr.Elapsed*p.speed*0.5+p.phase) * 0.2
		ry := fr.Elapsed*p.speed + p.phase
		rz := math.Cos(fr.Elapsed*p.speed*0.5+p.phase) * 0.2

		s := float32(p.scale)
		m := rl.MatrixMultiply(
			rl.MatrixScale(s, s, s),
			rl.MatrixRotateXYZ(rl.NewVector3(float32(rx), float32(ry), float32(rz))),
		)
		m = rl.MatrixMultiply(m, rl.MatrixTranslate(
			float32(f.pos[i].X), float32(f.pos[i].Y), float32(f.pos[i].Z)))

		f.batch.transforms[i] = m
	}

	f.batch.dirty = true
}

// Draw submits the whole batch in a single instanced call. Nothing is
// drawn until the batch exists, its GPU side is loaded and the current
// frame's transforms are in place.
func (f *ParticleField) Draw() {
	if f.batch == nil {
		return
	}
	f.batch.Submit(len(f.particles))
}

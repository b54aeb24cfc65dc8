package scene

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

// ImageHandle is the scene's view of an externally loaded photo. Texture
// returns nil until the asynchronous decode has resolved; a handle whose
// load failed keeps returning nil forever. Release frees the backing
// resource and must be called exactly once per removed photo.
type ImageHandle interface {
	Texture() *rl.Texture2D
	Release()
}

// Picture is one photo in the collection. The target positions are frozen
// at creation except for the tree target, which depends on the collection
// size and is recomputed whenever the collection changes. pos is runtime
// state owned by the picture animator, nobody else writes it.
type Picture struct {
	Handle  ImageHandle
	Ordinal int

	treeTarget    layout.Vec
	scatterTarget layout.Vec
	jitter        float64
	speed         float64
	phase         float64

	pos layout.Vec
}

// ControllerConfig carries the layout dimensions and the picture motion
// tuning shared by every photo.
type ControllerConfig struct {
	TreeRadius    float64
	TreeHeight    float64
	ScatterRadius float64
	MinSpeed      float64
	MaxSpeed      float64
}

// Controller owns the current layout mode and the ordered photo
// collection. Animators read both every tick; only the controller
// mutates them.
type Controller struct {
	cfg      ControllerConfig
	rng      *rand.Rand
	mode     Mode
	pictures []*Picture
}

func NewController(cfg ControllerConfig, rng *rand.Rand) *Controller {
	return &Controller{cfg: cfg, rng: rng, mode: ModeScattered}
}

// Mode returns the current layout mode.
func (c *Controller) Mode() Mode {
	return c.mode.normalized()
}

// ToggleMode flips between the scattered and tree layouts. Animators pick
// the new mode up on their next tick; there is nothing to broadcast.
func (c *Controller) ToggleMode() {
	if c.Mode() == ModeFormation {
		c.mode = ModeScattered
	} else {
		c.mode = ModeFormation
	}
	utils.Info("Layout mode: %s", c.mode)
}

// Pictures returns the ordered collection. Callers must treat it as
// read-only.
func (c *Controller) Pictures() []*Picture {
	return c.pictures
}

// AddItems appends one photo per handle and re-targets the whole
// collection: normalized height and radius on the spiral depend on the
// total count, so every existing tree target is stale the moment the
// count changes. Adding also drops back to the scattered layout so the
// new photos are revealed by the scatter rather than popping into the
// tree mid-formation.
func (c *Controller) AddItems(handles ...ImageHandle) {
	if len(handles) == 0 {
		return
	}

	for _, h := range handles {
		p := &Picture{
			Handle:        h,
			Ordinal:       len(c.pictures),
			scatterTarget: layout.RandomInSphere(c.rng, c.cfg.ScatterRadius),
			jitter:        layout.Jitter(c.rng),
			speed:         c.cfg.MinSpeed + c.rng.Float64()*(c.cfg.MaxSpeed-c.cfg.MinSpeed),
			phase:         c.rng.Float64() * 2 * math.Pi,
		}
		p.pos = p.scatterTarget
		c.pictures = append(c.pictures, p)
	}

	c.retarget()
	c.mode = ModeScattered
	utils.Info("Added %d picture(s), collection size %d", len(handles), len(c.pictures))
}

// Remove deletes the photo bound to h, releases its image resource and
// re-targets the remainder. A handle that is still loading is released
// as well; the loader discards the eventual completion.
func (c *Controller) Remove(h ImageHandle) {
	for i, p := range c.pictures {
		if p.Handle != h {
			continue
		}
		c.pictures = append(c.pictures[:i], c.pictures[i+1:]...)
		h.Release()
		for j := i; j < len(c.pictures); j++ {
			c.pictures[j].Ordinal = j
		}
		c.retarget()
		return
	}
}

// Shutdown releases every photo's image resource.
func (c *Controller) Shutdown() {
	for _, p := range c.pictures {
		p.Handle.Release()
	}
	c.pictures = nil
}

// retarget recomputes every tree target against the current total. The
// per-picture radial jitter stays frozen; only the total-dependent terms
// move.
func (c *Controller) retarget() {
	total := len(c.pictures)
	if total == 0 {
		return
	}
	for _, p := range c.pictures {
		p.treeTarget = layout.TreePosition(p.Ordinal, total, c.cfg.TreeRadius, c.cfg.TreeHeight, p.jitter)
	}
}

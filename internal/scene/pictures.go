package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/anim"
	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
)

// pictureDampRate is deliberately lower than the particle rate; photos
// should read as the calm, heavy objects of the scene.
const pictureDampRate = 1.2

// PictureStyle controls how photos are presented.
type PictureStyle struct {
	Height      float64 // world-space quad height, width follows aspect
	PlateMargin float64 // extra border of the backing plate per side
	PlateOffset float64 // how far the plate sits behind the photo
}

// PictureField animates the photo collection: a damped position chase
// like the particles, but the orientation is a camera billboard with a
// small roll sway instead of free tumbling. Each photo carries a rigid
// backing plate for the frame effect.
type PictureField struct {
	ctrl  *Controller
	style PictureStyle
	plate rl.Texture2D
	ready bool
}

func NewPictureField(ctrl *Controller, style PictureStyle) *PictureField {
	return &PictureField{ctrl: ctrl, style: style}
}

// LoadGPU creates the 1x1 white plate texture. Render thread only.
func (f *PictureField) LoadGPU() {
	if f.ready {
		return
	}
	img := rl.GenImageColor(1, 1, rl.White)
	f.plate = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	f.ready = true
}

// Update advances every photo's smoothed position toward its layout
// target. Orientation needs the camera and is resolved at draw time.
func (f *PictureField) Update(fr Frame) {
	t := f.ctrl.Mode().blend()
	for _, p := range f.ctrl.Pictures() {
		target := layout.Lerp(p.scatterTarget, p.treeTarget, t)
		p.pos = anim.DampVec(p.pos, target, pictureDampRate, fr.Delta)
	}
}

// roll is the billboard sway around the view axis, in radians.
func (p *Picture) roll(elapsed float64) float64 {
	return math.Sin(elapsed*p.speed+p.phase) * 0.1
}

// platePosition offsets the plate by the constant style offset directly
// away from the camera, so it always sits just behind its photo.
func (f *PictureField) platePosition(pos, cameraPos layout.Vec) layout.Vec {
	away := pos.Sub(cameraPos)
	dist := away.Length()
	if dist == 0 {
		return pos
	}
	s := f.style.PlateOffset / dist
	return layout.Vec{X: pos.X + away.X*s, Y: pos.Y + away.Y*s, Z: pos.Z + away.Z*s}
}

// Draw renders plate and photo as camera-facing billboards. Photos whose
// texture has not resolved (still decoding, or failed for good) are
// skipped outright; they join the scene whenever their load lands.
func (f *PictureField) Draw(camera rl.Camera3D, fr Frame) {
	if !f.ready {
		return
	}

	for _, p := range f.ctrl.Pictures() {
		tex := p.Handle.Texture()
		if tex == nil {
			continue
		}

		pos := rl.NewVector3(float32(p.pos.X), float32(p.pos.Y), float32(p.pos.Z))
		rollDeg := float32(layout.Degrees(p.roll(fr.Elapsed)))

		h := float32(f.style.Height)
		w := h * float32(tex.Width) / float32(tex.Height)
		source := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		up := rl.NewVector3(0, 1, 0)

		// The plate is slaved to the photo's transform: same billboard,
		// same roll, a constant offset away from the camera.
		pp := f.platePosition(p.pos, fr.CameraPos)
		platePos := rl.NewVector3(float32(pp.X), float32(pp.Y), float32(pp.Z))
		margin := float32(f.style.PlateMargin)
		plateSize := rl.NewVector2(w+2*margin, h+2*margin)
		plateSrc := rl.NewRectangle(0, 0, 1, 1)

		rl.DrawBillboardPro(camera, f.plate, plateSrc, platePos, up,
			plateSize, rl.NewVector2(plateSize.X/2, plateSize.Y/2), rollDeg, rl.RayWhite)
		rl.DrawBillboardPro(camera, *tex, source, pos, up,
			rl.NewVector2(w, h), rl.NewVector2(w/2, h/2), rollDeg, rl.White)
	}
}

// Unload frees the plate texture.
func (f *PictureField) Unload() {
	if f.ready {
		rl.UnloadTexture(f.plate)
		f.ready = false
	}
}

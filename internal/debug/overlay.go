// Package debug draws the F8 stats overlay.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Stats struct {
	Mode      string
	Particles int
	Pictures  int
	Pending   int
	Failed    int
}

type Overlay struct {
	Visible bool
}

func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

func (o *Overlay) Draw(s Stats) {
	if !o.Visible {
		return
	}

	rl.DrawRectangle(8, 8, 250, 92, rl.Fade(rl.Black, 0.55))
	rl.DrawFPS(16, 14)
	rl.DrawText(fmt.Sprintf("mode: %s", s.Mode), 16, 38, 16, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("particles: %d", s.Particles), 16, 56, 16, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("pictures: %d (%d loading, %d failed)", s.Pictures, s.Pending, s.Failed), 16, 74, 16, rl.RayWhite)
}

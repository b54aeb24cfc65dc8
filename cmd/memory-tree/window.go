package main

import (
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/assets"
	"github.com/sevenlucas7/christmas-memory-tree/internal/audio"
	"github.com/sevenlucas7/christmas-memory-tree/internal/config"
	"github.com/sevenlucas7/christmas-memory-tree/internal/debug"
	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
	"github.com/sevenlucas7/christmas-memory-tree/internal/scene"
	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

var (
	colBackground = rl.NewColor(6, 10, 24, 255)
	colParticle   = rl.NewColor(255, 214, 120, 255)
)

type Window struct {
	cfg    *config.Config
	loader *assets.Loader
	player *audio.Player

	ctrl      *scene.Controller
	particles *scene.ParticleField
	pictures  *scene.PictureField
	batch     *scene.Batch
	overlay   debug.Overlay

	camera     rl.Camera3D
	orbitAngle float64
	elevation  float64

	startTime     time.Time
	lastFrameTime time.Time
	frame         scene.Frame
}

func NewWindow(cfg *config.Config, loader *assets.Loader) *Window {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctrl := scene.NewController(scene.ControllerConfig{
		TreeRadius:    cfg.Tree.Radius,
		TreeHeight:    cfg.Tree.Height,
		ScatterRadius: cfg.ScatterRadius,
		MinSpeed:      cfg.Pictures.MinSpeed,
		MaxSpeed:      cfg.Pictures.MaxSpeed,
	}, rng)

	particles := scene.NewParticleField(scene.ParticleConfig{
		Count:         cfg.Particles.Count,
		TreeRadius:    cfg.Tree.Radius,
		TreeHeight:    cfg.Tree.Height,
		ScatterRadius: cfg.ScatterRadius,
		MinSpeed:      cfg.Particles.MinSpeed,
		MaxSpeed:      cfg.Particles.MaxSpeed,
		MinScale:      cfg.Particles.MinScale,
		MaxScale:      cfg.Particles.MaxScale,
	}, rng)

	pictures := scene.NewPictureField(ctrl, scene.PictureStyle{
		Height:      cfg.Pictures.Height,
		PlateMargin: cfg.Pictures.PlateMargin,
		PlateOffset: cfg.Pictures.PlateOffset,
	})

	return &Window{
		cfg:       cfg,
		loader:    loader,
		ctrl:      ctrl,
		particles: particles,
		pictures:  pictures,
		batch:     scene.NewBatch(cfg.Particles.Count),
		elevation: cfg.Camera.Elevation,
	}
}

func (w *Window) Run() {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	if w.cfg.Window.MSAA {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(w.cfg.Window.Width), int32(w.cfg.Window.Height), w.cfg.Window.Title)
	defer rl.CloseWindow()

	w.batch.LoadGPU(colParticle)
	w.particles.AttachBatch(w.batch)
	w.pictures.LoadGPU()

	w.player = audio.NewPlayer()
	w.player.PlayLoop(w.cfg.Audio.Music, w.cfg.Audio.Volume)

	w.camera = rl.Camera3D{
		Position:   rl.NewVector3(0, float32(w.elevation), float32(w.cfg.Camera.Distance)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(w.cfg.Camera.Fovy),
		Projection: rl.CameraPerspective,
	}

	w.addPictures(scanPictures(w.cfg.Pictures.Dir)...)

	w.startTime = time.Now()
	w.lastFrameTime = w.startTime

	rl.SetTargetFPS(60)
	for !rl.WindowShouldClose() {
		w.Update()

		rl.BeginDrawing()
		w.Draw()
		rl.EndDrawing()
	}

	w.shutdown()
}

func (w *Window) addPictures(paths ...string) {
	if len(paths) == 0 {
		return
	}
	handles := make([]scene.ImageHandle, 0, len(paths))
	for _, p := range paths {
		if !assets.SupportedExt(p) {
			utils.Warn("Skipping unsupported file: %s", p)
			continue
		}
		handles = append(handles, w.loader.Load(p))
	}
	w.ctrl.AddItems(handles...)
}

func (w *Window) Update() {
	currentTime := time.Now()
	deltaTime := currentTime.Sub(w.lastFrameTime).Seconds()
	w.lastFrameTime = currentTime
	totalTime := currentTime.Sub(w.startTime).Seconds()

	// Finished decodes become textures here, before any animator runs.
	w.loader.Poll()
	w.player.Update()

	if rl.IsKeyPressed(rl.KeySpace) {
		w.ctrl.ToggleMode()
	}
	if rl.IsKeyPressed(rl.KeyF8) {
		w.overlay.Toggle()
	}
	if rl.IsFileDropped() {
		dropped := rl.LoadDroppedFiles()
		w.addPictures(dropped...)
		rl.UnloadDroppedFiles()
	}

	w.updateCamera(deltaTime)

	w.frame = scene.Frame{
		Elapsed: totalTime,
		Delta:   deltaTime,
		CameraPos: layout.Vec{
			X: float64(w.camera.Position.X),
			Y: float64(w.camera.Position.Y),
			Z: float64(w.camera.Position.Z),
		},
	}

	w.particles.Update(w.frame, w.ctrl.Mode())
	w.pictures.Update(w.frame)
}

// updateCamera advances the slow auto orbit, folds in mouse dragging and,
// when enabled, the X11 desktop-pointer parallax.
func (w *Window) updateCamera(dt float64) {
	w.orbitAngle += dt * w.cfg.Camera.OrbitSpeed

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		w.orbitAngle += float64(delta.X) * 0.004
		w.elevation += float64(delta.Y) * 0.02
		w.elevation = math.Max(-w.cfg.Tree.Height, math.Min(w.cfg.Tree.Height, w.elevation))
	}

	var px, py float64
	if w.cfg.Camera.Parallax {
		if mx, my, err := utils.GlobalMousePosition(); err == nil {
			// Normalize against a nominal desktop size; exactness is
			// irrelevant for a subtle sway.
			px = (float64(mx)/1920 - 0.5) * 2
			py = (float64(my)/1080 - 0.5) * 2
		}
	}

	dist := w.cfg.Camera.Distance
	angle := w.orbitAngle + px*w.cfg.Camera.ParallaxAmount*0.1
	w.camera.Position = rl.NewVector3(
		float32(math.Sin(angle)*dist),
		float32(w.elevation-py*w.cfg.Camera.ParallaxAmount*0.5),
		float32(math.Cos(angle)*dist),
	)
}

func (w *Window) Draw() {
	rl.ClearBackground(colBackground)

	rl.BeginMode3D(w.camera)
	w.particles.Draw()
	w.pictures.Draw(w.camera, w.frame)
	rl.EndMode3D()

	w.overlay.Draw(debug.Stats{
		Mode:      w.ctrl.Mode().String(),
		Particles: w.cfg.Particles.Count,
		Pictures:  len(w.ctrl.Pictures()),
		Pending:   w.loader.Pending(),
		Failed:    w.loader.Failed(),
	})
}

func (w *Window) shutdown() {
	w.ctrl.Shutdown()
	w.pictures.Unload()
	w.batch.Unload()
	w.player.Close()
	utils.CloseX11()
}

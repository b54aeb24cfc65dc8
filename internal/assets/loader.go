// Package assets turns image files into GPU textures without ever
// blocking the frame loop. Decoding runs on background goroutines; the
// results are drained on the frame tick, which is the only place textures
// are created or destroyed (GL context thread).
package assets

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

// Photo is an opaque handle to one user image. Texture stays nil until
// the decode resolves; a failed decode leaves it nil permanently, the
// element simply never draws. Implements scene.ImageHandle.
type Photo struct {
	id       uint64
	path     string
	tex      *rl.Texture2D
	failed   bool
	released bool
}

// Texture returns the uploaded texture, or nil while loading/failed.
func (p *Photo) Texture() *rl.Texture2D {
	return p.tex
}

// Path returns the source file this photo was loaded from.
func (p *Photo) Path() string {
	return p.path
}

// Failed reports whether the decode failed for good. A failed photo is
// never retried; re-adding the file is the only way back.
func (p *Photo) Failed() bool {
	return p.failed
}

// Release frees the texture if one was uploaded and marks the handle dead
// so an in-flight decode result is discarded instead of resurrecting it.
// Safe to call at any point of the load lifecycle, render thread only.
func (p *Photo) Release() {
	if p.released {
		return
	}
	p.released = true
	if p.tex != nil {
		rl.UnloadTexture(*p.tex)
		p.tex = nil
	}
}

type loadResult struct {
	id  uint64
	img *image.RGBA
	err error
}

// Loader owns the async decode pipeline. All methods are frame-tick
// (render thread) only; the goroutines it spawns touch nothing but their
// own result message.
type Loader struct {
	results chan loadResult
	pending map[uint64]*Photo
	nextID  uint64
	failed  int
	cache   *Cache
}

// NewLoader creates a loader. cache may be nil to decode from source
// every time.
func NewLoader(cache *Cache) *Loader {
	return &Loader{
		results: make(chan loadResult, 64),
		pending: make(map[uint64]*Photo),
		cache:   cache,
	}
}

// Load starts decoding path in the background and returns the handle
// immediately. The handle's texture appears after some later Poll.
func (l *Loader) Load(path string) *Photo {
	l.nextID++
	p := &Photo{id: l.nextID, path: path}
	l.pending[p.id] = p

	go func(id uint64, path string) {
		img, err := l.decode(path)
		l.results <- loadResult{id: id, img: img, err: err}
	}(p.id, path)

	utils.Debug("Decoding %s", path)
	return p
}

// Pending reports how many decodes are still in flight.
func (l *Loader) Pending() int {
	return len(l.pending)
}

// Failed reports how many decodes have failed permanently.
func (l *Loader) Failed() int {
	return l.failed
}

// Poll drains finished decodes and uploads their textures. Called once
// per frame before the animators run, so a photo's first visible frame is
// always a fully consistent one. Results for released handles are dropped
// on the floor; nothing ever mutates a removed photo.
func (l *Loader) Poll() {
	for {
		select {
		case res := <-l.results:
			p, ok := l.pending[res.id]
			if !ok {
				continue
			}
			delete(l.pending, res.id)

			if p.released {
				continue
			}
			if res.err != nil {
				p.failed = true
				l.failed++
				utils.Warn("Failed to load %s: %v", p.path, res.err)
				continue
			}

			img := rl.NewImageFromImage(res.img)
			tex := rl.LoadTextureFromImage(img)
			rl.UnloadImage(img)
			rl.SetTextureFilter(tex, rl.FilterBilinear)
			p.tex = &tex
			utils.Info("Loaded %s (%dx%d)", p.path, tex.Width, tex.Height)
		default:
			return
		}
	}
}

func (l *Loader) decode(path string) (*image.RGBA, error) {
	if l.cache != nil {
		if img, ok := l.cache.Get(path); ok {
			return img, nil
		}
	}

	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Put(path, img)
	}
	return img, nil
}

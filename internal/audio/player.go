// Package audio plays the optional background music loop through raylib's
// streaming audio.
package audio

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

type Player struct {
	music  rl.Music
	active bool
}

func NewPlayer() *Player {
	if !utils.SilentMode && !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
	}
	return &Player{}
}

// PlayLoop starts streaming path on repeat. A second call replaces the
// current stream.
func (p *Player) PlayLoop(path string, volume float64) {
	if utils.SilentMode || path == "" {
		return
	}
	p.stop()

	music := rl.LoadMusicStream(path)
	if music.FrameCount == 0 {
		utils.Warn("Could not open music stream: %s", path)
		return
	}

	music.Looping = true
	rl.SetMusicVolume(music, float32(volume))
	rl.PlayMusicStream(music)

	p.music = music
	p.active = true
	utils.Info("Playing %s (vol %.2f)", path, volume)
}

// Update feeds the stream buffer; call once per frame.
func (p *Player) Update() {
	if p.active {
		rl.UpdateMusicStream(p.music)
	}
}

func (p *Player) stop() {
	if p.active {
		rl.StopMusicStream(p.music)
		rl.UnloadMusicStream(p.music)
		p.active = false
	}
}

func (p *Player) Close() {
	p.stop()
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}

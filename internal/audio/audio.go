package audio

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"platformer/internal/config"
	"platformer/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Source is a loaded cue and where it was last played.
type Source struct {
	Sound       rl.Sound
	Position    rl.Vector3
	MaxDistance float32
	playing     bool
}

// Bank holds one sound per cue. A disabled bank or a cue without a file
// plays nothing.
type Bank struct {
	mu       sync.Mutex
	enabled  bool
	volume   float32
	listener Listener
	sources  map[engine.Cue]*Source
}

// NewBank opens the audio device when cfg enables sound.
func NewBank(cfg config.Audio) *Bank {
	b := &Bank{
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		sources: make(map[engine.Cue]*Source),
		listener: Listener{
			Forward: rl.Vector3{X: 1},
			Right:   rl.Vector3{Y: -1},
		},
	}
	if b.enabled {
		rl.InitAudioDevice()
		rl.SetMasterVolume(b.volume)
	}
	return b
}

// SoundPath returns the file a cue is loaded from.
func SoundPath(dir string, cue engine.Cue) string {
	return filepath.Join(dir, string(cue)+".wav")
}

// Load loads every cue from dir and returns how many were found. Missing
// files are logged and skipped.
func (b *Bank) Load(dir string, cues []engine.Cue) int {
	if !b.enabled {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	loaded := 0
	for _, cue := range cues {
		path := SoundPath(dir, cue)
		if _, err := os.Stat(path); err != nil {
			log.Printf("Audio: no sound for %q: %v", cue, err)
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			log.Printf("Audio: could not load %s", path)
			continue
		}
		b.sources[cue] = &Source{Sound: sound, MaxDistance: 50}
		loaded++
	}
	log.Printf("Audio: loaded %d/%d sounds from %s", loaded, len(cues), dir)
	return loaded
}

// Play starts cue as heard from pos.
func (b *Bank) Play(cue engine.Cue, pos rl.Vector3) {
	b.mu.Lock()
	defer b.mu.Unlock()

	src, ok := b.sources[cue]
	if !ok {
		return
	}
	src.Position = pos
	volume, pan := Spatialize(b.listener, pos, 1, src.MaxDistance)
	rl.SetSoundVolume(src.Sound, volume)
	rl.SetSoundPan(src.Sound, pan)
	rl.PlaySound(src.Sound)
	src.playing = true
}

// SetListener updates the listener position and orientation
func (b *Bank) SetListener(pos, forward, up rl.Vector3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listener = NewListener(pos, forward, up)
}

// NewListener builds a listener, falling back to +X forward when forward
// is zero.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 1}
	}

	// right = forward x up
	right := rl.Vector3CrossProduct(l.Forward, up)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{Y: -1}
	}
	return l
}

// Update keeps the volume and pan of playing sounds in step with the
// listener.
func (b *Bank) Update() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, src := range b.sources {
		if !src.playing {
			continue
		}
		if !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}
		volume, pan := Spatialize(b.listener, src.Position, 1, src.MaxDistance)
		rl.SetSoundVolume(src.Sound, volume)
		rl.SetSoundPan(src.Sound, pan)
	}
}

// Close shuts down the audio system
func (b *Bank) Close() {
	if !b.enabled {
		return
	}
	b.mu.Lock()
	for _, src := range b.sources {
		rl.UnloadSound(src.Sound)
	}
	b.sources = nil
	b.mu.Unlock()
	rl.CloseAudioDevice()
}

// Spatialize returns the volume and pan of a sound at pos. Volume falls
// off linearly to zero at maxDistance and sounds behind the listener are
// slightly quieter. Pan is 0 for full left, 1 for full right.
func Spatialize(l Listener, pos rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)

	if distance >= maxDistance {
		return 0, 0.5
	}
	volume *= 1.0 - distance/maxDistance

	pan := float32(0.5)
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		pan = 0.5 + rl.Vector3DotProduct(direction, l.Right)*0.5
		pan = math32.Max(0, math32.Min(1, pan))

		frontDot := rl.Vector3DotProduct(direction, l.Forward)
		if frontDot < 0 {
			volume *= 0.7 + 0.3*math32.Abs(frontDot)
		}
	}
	return volume, pan
}

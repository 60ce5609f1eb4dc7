// Package config holds the tunables of the game and reads them from a TOML
// file. Every field has a default; a file only needs the values it changes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the binaries look for their config.
const DefaultPath = "platformer.toml"

type Config struct {
	Window  Window  `toml:"window"`
	Physics Physics `toml:"physics"`
	Game    Game    `toml:"game"`
	Hero    Hero    `toml:"hero"`
	Audio   Audio   `toml:"audio"`
}

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type Physics struct {
	// GroundProbe is how far below a moved body the world looks for ground.
	GroundProbe float32 `toml:"ground_probe"`
}

type Game struct {
	Level string `toml:"level"`
	// TickMs is the duration of one simulation tick in milliseconds.
	TickMs int  `toml:"tick_ms"`
	Debug  bool `toml:"debug"`
	// HotReload reloads the level when its file changes on disk.
	HotReload bool `toml:"hot_reload"`
}

// Hero values are per tick, in world units.
type Hero struct {
	Gravity      float32 `toml:"gravity"`
	JumpSpeed    float32 `toml:"jump_speed"`
	WalkSpeed    float32 `toml:"walk_speed"`
	MaxHorzSpeed float32 `toml:"max_horz_speed"`
	MaxFallSpeed float32 `toml:"max_fall_speed"`
	StairClimb   float32 `toml:"stair_climb"`
	Life         int     `toml:"life"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float32 `toml:"volume"`
	Dir     string  `toml:"dir"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "platformer",
			TargetFPS: 60,
		},
		Physics: Physics{
			GroundProbe: 0.1,
		},
		Game: Game{
			Level:  "assets/levels/level1.yaml",
			TickMs: 1,
		},
		Hero: Hero{
			Gravity:      0.00005,
			JumpSpeed:    0.012,
			WalkSpeed:    0.0075,
			MaxHorzSpeed: 0.02,
			MaxFallSpeed: 0.02,
			StairClimb:   0.5,
			Life:         31,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.8,
			Dir:     "assets/sounds",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Game.TickMs <= 0:
		return fmt.Errorf("tick_ms must be positive, got %d", c.Game.TickMs)
	case c.Physics.GroundProbe < 0:
		return fmt.Errorf("ground_probe must not be negative, got %g", c.Physics.GroundProbe)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume %g outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

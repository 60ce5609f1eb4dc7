package entities

import (
	"platformer/internal/engine"
	"platformer/internal/movement"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Crate is a solid box that falls until it lands. Platforms carry it and
// the player can stand on it.
type Crate struct {
	engine.BaseEntity

	Gravity      float32
	MaxFallSpeed float32

	vel rl.Vector3
}

func NewCrate() *Crate {
	c := &Crate{
		BaseEntity:   engine.NewBaseEntity("crate"),
		Gravity:      0.00005,
		MaxFallSpeed: 0.02,
	}
	c.Solid = true
	c.CollisionGroup = CGWalls
	return c
}

func (c *Crate) Tick() {
	c.vel.Z = math32.Max(c.vel.Z-c.Gravity, -c.MaxFallSpeed)

	blocked := movement.SlideMoveAxes(c.Physics, c.GetBody(), c.vel)
	if blocked.X {
		c.vel.X = 0
	}
	if blocked.Y {
		c.vel.Y = 0
	}
	if blocked.Z {
		c.vel.Z = 0
	}
}

func (c *Crate) OnGround() bool {
	return movement.IsOnGround(c.Physics, c.GetBody())
}

package entities

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpikesDamage kills outright whatever is not invulnerable.
const SpikesDamage = 1000

type Spikes struct {
	engine.BaseEntity
}

func NewSpikes() *Spikes {
	s := &Spikes{BaseEntity: engine.NewBaseEntity("spikes")}
	s.Size = rl.Vector3{X: 1, Y: 1, Z: 0.95}
	s.Solid = true
	s.CollisionGroup = CGWalls
	// only a vulnerable player triggers the spikes
	s.CollidesWith = CGSolidPlayer
	return s
}

func (s *Spikes) OnCollide(other engine.Entity) {
	if d, ok := other.(engine.Damageable); ok {
		d.OnDamage(SpikesDamage)
	}
}

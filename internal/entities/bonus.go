package entities

import (
	"platformer/internal/engine"
)

// Bonus restores the player's life when picked up.
type Bonus struct {
	engine.BaseEntity

	Message string
}

func NewBonus(msg string) *Bonus {
	b := &Bonus{BaseEntity: engine.NewBaseEntity("bonus"), Message: msg}
	b.CollisionGroup = 0
	b.CollidesWith = CGPlayer | CGSolidPlayer
	return b
}

func (b *Bonus) OnCollide(other engine.Entity) {
	if b.Dead() {
		return
	}
	p, ok := other.(engine.Player)
	if !ok {
		return
	}
	p.Restore()
	b.Game.PlaySound(engine.SndBonus)
	if b.Message != "" {
		b.Game.TextBox(b.Message)
	}
	b.Kill()
}

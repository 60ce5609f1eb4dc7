package entities

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FinishDelay is how long the finish line blinks before the level ends.
const FinishDelay = 1000

// FinishLine ends the level shortly after the player reaches it.
type FinishLine struct {
	engine.BaseEntity

	touchDelay int
}

func NewFinishLine() *FinishLine {
	f := &FinishLine{BaseEntity: engine.NewBaseEntity("finish")}
	f.Size = rl.Vector3{X: 2, Y: 2, Z: 2}
	f.Solid = false
	f.CollisionGroup = 0
	f.CollidesWith = CGPlayer | CGSolidPlayer
	return f
}

// Touched reports whether the level is about to end.
func (f *FinishLine) Touched() bool {
	return f.touchDelay > 0
}

func (f *FinishLine) Tick() {
	if engine.Decrement(&f.touchDelay) {
		f.Game.EndLevel()
	}
}

func (f *FinishLine) OnCollide(engine.Entity) {
	if f.touchDelay > 0 {
		return
	}
	f.Game.PlaySound(engine.SndTeleport)
	f.touchDelay = FinishDelay
}

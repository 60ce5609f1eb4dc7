package entities

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const signDelay = 3000

// Sign shows its text when the player walks by.
type Sign struct {
	engine.BaseEntity

	Text string

	shownDelay int
}

func NewSign(text string) *Sign {
	s := &Sign{BaseEntity: engine.NewBaseEntity("sign"), Text: text}
	s.Size = rl.Vector3{X: 2, Y: 1, Z: 2}
	s.CollisionGroup = 0
	s.CollidesWith = CGPlayer | CGSolidPlayer
	return s
}

func (s *Sign) Tick() {
	engine.Decrement(&s.shownDelay)
}

func (s *Sign) OnCollide(engine.Entity) {
	if s.shownDelay > 0 || s.Text == "" {
		return
	}
	s.shownDelay = signDelay
	s.Game.TextBox(s.Text)
}

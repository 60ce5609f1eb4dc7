package entities

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Switch fires a trigger the first time it is touched or used.
type Switch struct {
	engine.BaseEntity

	ID    int
	State bool
}

func NewSwitch(id int) *Switch {
	s := &Switch{BaseEntity: engine.NewBaseEntity("switch"), ID: id}
	s.Size = rl.Vector3Scale(rl.Vector3{X: 1, Y: 1, Z: 1}, 0.75)
	s.Solid = true
	return s
}

func (s *Switch) Tick() {
	engine.Decrement(&s.Blinking)
}

func (s *Switch) OnCollide(engine.Entity) {
	s.touch()
}

func (s *Switch) OnSwitch() {
	s.touch()
}

func (s *Switch) touch() {
	if s.Blinking > 0 || s.State {
		return
	}

	s.Blinking = 1200
	s.State = true
	s.Game.PlaySound(engine.SndSwitch)
	s.Game.PostEvent(engine.TriggerEvent{ID: s.ID})
}

// Detector fires a trigger whenever the player walks into it, at most once
// per second.
type Detector struct {
	engine.BaseEntity

	ID int

	touchDelay int
}

func NewDetector(id int) *Detector {
	d := &Detector{BaseEntity: engine.NewBaseEntity("detector"), ID: id}
	d.Solid = false
	d.CollisionGroup = 0 // don't trigger other detectors
	d.CollidesWith = CGPlayer | CGSolidPlayer
	return d
}

func (d *Detector) Tick() {
	engine.Decrement(&d.touchDelay)
}

func (d *Detector) OnCollide(engine.Entity) {
	if d.touchDelay > 0 {
		return
	}

	d.Game.PlaySound(engine.SndSwitch)
	d.Game.PostEvent(engine.TriggerEvent{ID: d.ID})
	d.touchDelay = 1000
}

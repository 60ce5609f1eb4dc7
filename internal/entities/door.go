package entities

import (
	"platformer/internal/engine"
	"platformer/internal/movement"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var doorSize = rl.Vector3{X: 0.5, Y: 2, Z: 2}

// DoorTravel is how far a door rises when open.
const DoorTravel = 2.0

// blockedBelow reports whether lowering body by step would close on the
// player. The player is not solid, so sweeps alone never stop a door.
func blockedBelow(probe movement.Probe, body *physics.Body, step float32) bool {
	below := body.Box().Translate(rl.Vector3{Z: -step})
	return probe.GetBodiesInBox(below, CGPlayer|CGSolidPlayer, false, body) != nil
}

// Door opens and closes when a trigger with its ID fires.
type Door struct {
	engine.BaseEntity

	ID    int
	Open  bool
	Speed float32

	basePos      rl.Vector3
	subscription engine.ListenerID
}

func NewDoor(id int) *Door {
	d := &Door{BaseEntity: engine.NewBaseEntity("door"), ID: id, Speed: 0.002}
	d.Size = doorSize
	d.Solid = true
	d.CollisionGroup = CGWalls
	return d
}

func (d *Door) Enter(g engine.Game) {
	d.BaseEntity.Enter(g)
	d.basePos = d.Pos
	d.subscription = g.Subscribe(d.notify)
}

func (d *Door) Leave() {
	d.Game.Unsubscribe(d.subscription)
}

func (d *Door) notify(evt any) {
	trg, ok := evt.(engine.TriggerEvent)
	if !ok || trg.ID != d.ID {
		return
	}
	d.Game.PlaySound(engine.SndDoor)
	d.Open = !d.Open
}

func (d *Door) Tick() {
	moveDoor(d.Physics, d.GetBody(), d.basePos, d.Open, d.Speed)
}

// AutoDoor is a door the player opens and closes with "use".
type AutoDoor struct {
	engine.BaseEntity

	Open  bool
	Speed float32

	basePos rl.Vector3
}

func NewAutoDoor() *AutoDoor {
	d := &AutoDoor{BaseEntity: engine.NewBaseEntity("auto_door"), Speed: 0.004}
	d.Size = doorSize
	d.Solid = true
	d.CollisionGroup = CGWalls
	return d
}

func (d *AutoDoor) Enter(g engine.Game) {
	d.BaseEntity.Enter(g)
	d.basePos = d.Pos
}

func (d *AutoDoor) OnSwitch() {
	d.Game.PlaySound(engine.SndDoor)
	d.Open = !d.Open
}

func (d *AutoDoor) Tick() {
	moveDoor(d.Physics, d.GetBody(), d.basePos, d.Open, d.Speed)
}

// moveDoor raises an open door up to DoorTravel above base and lowers a
// closed one back, waiting while something stands underneath.
func moveDoor(probe movement.Probe, body *physics.Body, base rl.Vector3, open bool, speed float32) {
	height := body.Pos.Z - base.Z
	switch {
	case open && height < DoorTravel:
		probe.MoveBody(body, rl.Vector3{Z: min(speed, DoorTravel-height)})
	case !open && height > 0:
		step := min(speed, height)
		if blockedBelow(probe, body, step) {
			return
		}
		probe.MoveBody(body, rl.Vector3{Z: -step})
	}
}

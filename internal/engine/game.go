package engine

import (
	"platformer/internal/movement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cue names a sound effect. The audio bank loads it from "<cue>.wav".
type Cue string

const (
	SndJump     Cue = "jump"
	SndLand     Cue = "land"
	SndHurt     Cue = "hurt"
	SndDie      Cue = "die"
	SndSwitch   Cue = "switch"
	SndDoor     Cue = "door"
	SndTeleport Cue = "teleport"
	SndBonus    Cue = "bonus"
)

// AllCues lists every cue an entity may play.
var AllCues = []Cue{SndJump, SndLand, SndHurt, SndDie, SndSwitch, SndDoor, SndTeleport, SndBonus}

// TriggerEvent is posted by switches and detectors. Doors with the same ID
// react to it.
type TriggerEvent struct {
	ID int
}

// Game is the game as seen by entities. It lets them reach the physics
// world and the player without import cycles.
type Game interface {
	Physics() movement.Probe
	PlaySound(cue Cue)
	TextBox(msg string)
	Spawn(e Entity)

	PostEvent(evt any)
	Subscribe(fn func(evt any)) ListenerID
	Unsubscribe(id ListenerID)

	PlayerPosition() rl.Vector3
	EndLevel()
}

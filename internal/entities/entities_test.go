package entities

import (
	"testing"

	"platformer/internal/engine"
	"platformer/internal/level"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingPlatformCarriesCrate(t *testing.T) {
	g := newTestGame(nil)
	p := NewMovingPlatform(1)
	g.spawnAt(p, rl.Vector3{})
	c := NewCrate()
	g.spawnAt(c, rl.Vector3{X: 0.5, Y: 0.5, Z: 1.2})

	g.tick(1500, engine.Control{})

	assert.Greater(t, p.Pos.Y, float32(2), "platform moved along y")
	assert.Equal(t, float32(0), p.Pos.Z)
	assert.InDelta(t, p.Pos.Y+0.5, c.Pos.Y, 0.05, "crate rode along")
	assert.InDelta(t, 1, c.Pos.Z, 0.02)
	assert.Same(t, p.GetBody(), c.Ground)
}

func TestMovingPlatformVertical(t *testing.T) {
	g := newTestGame(nil)
	p := NewMovingPlatform(0)
	g.spawnAt(p, rl.Vector3{})

	assert.Equal(t, rl.Vector3{}, p.Delta(), "starts at rest")
	g.tick(1000, engine.Control{})

	assert.Greater(t, p.Pos.Z, float32(1))
	assert.Equal(t, float32(0), p.Pos.Y)
}

func TestPlatformLiftsHero(t *testing.T) {
	g := newTestGame(nil)
	p := NewMovingPlatform(0)
	g.spawnAt(p, rl.Vector3{X: -1, Y: -1})
	h := g.spawnHero(rl.Vector3{Z: 1.1})

	g.tick(1000, engine.Control{})

	assert.True(t, h.OnGround())
	assert.InDelta(t, p.Pos.Z+1, h.Pos.Z, 0.02)
}

func TestCrateFallsAndLands(t *testing.T) {
	g := newTestGame(floorEdifice())
	c := NewCrate()
	g.spawnAt(c, rl.Vector3{Z: 2})

	g.tick(50, engine.Control{})
	assert.False(t, c.OnGround())

	g.tick(1000, engine.Control{})
	assert.True(t, c.OnGround())
	assert.InDelta(t, 0, c.Pos.Z, 0.02)
}

func TestSwitchOpensDoor(t *testing.T) {
	g := newTestGame(nil)
	sw := NewSwitch(3)
	g.spawnAt(sw, rl.Vector3{X: 10})
	door := NewDoor(3)
	g.spawnAt(door, rl.Vector3{})
	other := NewDoor(4)
	g.spawnAt(other, rl.Vector3{X: 5})

	sw.OnSwitch()
	assert.True(t, sw.State)
	assert.True(t, door.Open)
	assert.False(t, other.Open)
	assert.Equal(t, 1, g.count(engine.SndSwitch))

	sw.OnSwitch()
	assert.Equal(t, 1, g.count(engine.SndSwitch), "a switch fires once")

	g.tick(1500, engine.Control{})
	assert.InDelta(t, DoorTravel, door.Pos.Z, 1e-3)
	assert.Equal(t, float32(0), other.Pos.Z)
}

func TestDoorWaitsForPlayerBeforeClosing(t *testing.T) {
	g := newTestGame(nil)
	door := NewDoor(1)
	g.spawnAt(door, rl.Vector3{})
	g.PostEvent(engine.TriggerEvent{ID: 1})
	g.tick(1000, engine.Control{})
	require.InDelta(t, DoorTravel, door.Pos.Z, 1e-3)

	// something of the player's group stands in the doorway
	under := NewSign("")
	under.CollisionGroup = CGPlayer
	g.spawnAt(under, rl.Vector3{Y: 0.5})

	g.PostEvent(engine.TriggerEvent{ID: 1})
	assert.False(t, door.Open)
	g.tick(2000, engine.Control{})
	assert.InDelta(t, DoorTravel, door.Pos.Z, 0.01, "door must not close on the player")

	under.Kill()
	g.tick(1, engine.Control{})
	g.tick(1000, engine.Control{})
	assert.InDelta(t, 0, door.Pos.Z, 1e-3)
}

func TestDoorUnsubscribesOnLeave(t *testing.T) {
	g := newTestGame(nil)
	door := NewDoor(1)
	g.spawnAt(door, rl.Vector3{})
	assert.Equal(t, 1, g.bus.GetListenerCount())

	door.Kill()
	g.tick(1, engine.Control{})

	assert.Equal(t, 0, g.bus.GetListenerCount())
	assert.Equal(t, 0, g.world.BodyCount())
}

func TestDetectorTriggersOnPlayer(t *testing.T) {
	g := newTestGame(nil)
	det := NewDetector(2)
	g.spawnAt(det, rl.Vector3{})
	var got []int
	g.Subscribe(func(evt any) {
		if trg, ok := evt.(engine.TriggerEvent); ok {
			got = append(got, trg.ID)
		}
	})

	crate := NewCrate()
	crate.Gravity = 0
	g.spawnAt(crate, rl.Vector3{X: 0.5})
	g.world.CheckForOverlaps()
	assert.Empty(t, got, "only the player triggers detectors")

	g.spawnHero(rl.Vector3{X: -0.5})
	g.world.CheckForOverlaps()
	g.world.CheckForOverlaps()
	assert.Equal(t, []int{2}, got, "detector is debounced")
}

func TestFinishLineEndsLevel(t *testing.T) {
	g := newTestGame(nil)
	f := NewFinishLine()
	g.spawnAt(f, rl.Vector3{})
	g.spawnHero(rl.Vector3{X: 0.5, Y: 0.5})

	g.world.CheckForOverlaps()
	assert.True(t, f.Touched())
	assert.Equal(t, 1, g.count(engine.SndTeleport))

	g.tick(FinishDelay, engine.Control{})
	assert.Equal(t, 1, g.ended)
	assert.Equal(t, 1, g.count(engine.SndTeleport), "no second touch while blinking")
}

func TestBonusRestoresHero(t *testing.T) {
	g := newTestGame(nil)
	h := g.spawnHero(rl.Vector3{})
	h.OnDamage(10)
	require.Less(t, h.Health(), float32(1))

	b := NewBonus("life up")
	g.spawnAt(b, rl.Vector3{X: 0.2})
	g.tick(1, engine.Control{})

	assert.Equal(t, float32(1), h.Health())
	assert.Equal(t, []string{"life up"}, g.texts)
	assert.True(t, b.Dead())
	assert.NotContains(t, g.scene.Entities, engine.Entity(b))
}

func TestSignShowsTextOnce(t *testing.T) {
	g := newTestGame(nil)
	g.spawnAt(NewSign("hello"), rl.Vector3{})
	g.spawnHero(rl.Vector3{X: 0.5})

	g.world.CheckForOverlaps()
	g.world.CheckForOverlaps()

	assert.Equal(t, []string{"hello"}, g.texts)
}

func TestRegister(t *testing.T) {
	reg := engine.NewRegistry()
	Register(reg)

	assert.Equal(t, []string{
		"auto_door", "bonus", "crate", "detector", "door", "finish",
		"moving_platform", "mp", "sign", "spikes", "switch",
	}, reg.Names())

	e, err := reg.Create("mp", level.Props{"0": "1"})
	require.NoError(t, err)
	p, ok := e.(*MovingPlatform)
	require.True(t, ok)
	assert.Equal(t, 1, p.Dir)
	assert.True(t, p.Pusher)

	e, err = reg.Create("door", level.Props{"0": "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, e.(*Door).ID)

	e, err = reg.Create("sign", level.Props{"text": "read me"})
	require.NoError(t, err)
	assert.Equal(t, "read me", e.(*Sign).Text)

	_, err = reg.Create("dragon", level.Props{})
	assert.ErrorIs(t, err, engine.ErrUnknownEntity)
}

package entities

import (
	"platformer/internal/config"
	"platformer/internal/engine"
	"platformer/internal/movement"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testGame is a headless engine.Game over a real physics world.
type testGame struct {
	world  *physics.PhysicsWorld
	scene  *engine.Scene
	bus    engine.EventWithArg[any]
	sounds []engine.Cue
	texts  []string
	ended  int
	hero   *Hero
}

func newTestGame(edifice physics.EdificeFunc) *testGame {
	return &testGame{
		world: physics.NewPhysicsWorld(edifice),
		scene: engine.NewScene("test"),
	}
}

// floorEdifice is the half-space z < 0.
func floorEdifice() physics.EdificeFunc {
	floor := physics.Convex{Planes: []physics.Plane{{N: physics.Up}}}
	return func(box physics.Box, delta rl.Vector3) physics.Trace {
		a := box.Center()
		return floor.Trace(a, rl.Vector3Add(a, delta), box.HalfSize())
	}
}

func (g *testGame) Physics() movement.Probe { return g.world }
func (g *testGame) PlaySound(c engine.Cue)  { g.sounds = append(g.sounds, c) }
func (g *testGame) TextBox(msg string)      { g.texts = append(g.texts, msg) }
func (g *testGame) EndLevel()               { g.ended++ }

func (g *testGame) Spawn(e engine.Entity) {
	engine.Attach(e, g)
	g.world.AddBody(e.GetBody())
	g.scene.Add(e)
}

func (g *testGame) PostEvent(evt any) { g.bus.Invoke(evt) }

func (g *testGame) Subscribe(fn func(any)) engine.ListenerID {
	return g.bus.AddListener(fn)
}

func (g *testGame) Unsubscribe(id engine.ListenerID) { g.bus.RemoveListener(id) }

func (g *testGame) PlayerPosition() rl.Vector3 {
	if g.hero == nil {
		return rl.Vector3{}
	}
	return g.hero.Pos
}

func (g *testGame) spawnAt(e engine.Entity, pos rl.Vector3) {
	e.GetBody().Pos = pos
	g.Spawn(e)
}

func (g *testGame) spawnHero(pos rl.Vector3) *Hero {
	h := NewHero(config.Default().Hero)
	g.hero = h
	g.spawnAt(h, pos)
	return h
}

// tick runs n game ticks with the given input held.
func (g *testGame) tick(n int, c engine.Control) {
	for range n {
		if g.hero != nil {
			g.hero.Think(c)
		}
		g.scene.Tick()
		g.world.CheckForOverlaps()
		for _, dead := range g.scene.RemoveDead() {
			dead.Leave()
			g.world.RemoveBody(dead.GetBody())
		}
	}
}

func (g *testGame) count(cue engine.Cue) int {
	n := 0
	for _, c := range g.sounds {
		if c == cue {
			n++
		}
	}
	return n
}

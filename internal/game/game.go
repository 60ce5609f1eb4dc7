package game

import (
	"errors"
	"fmt"
	"log"

	"platformer/internal/config"
	"platformer/internal/engine"
	"platformer/internal/entities"
	"platformer/internal/level"
	"platformer/internal/movement"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextDuration is how long a text box stays up, in ticks.
const TextDuration = 3000

// Game is the state of one room being played: the physics world, its
// entities and the hero. It has no window; Run drives it from raylib.
type Game struct {
	Config  config.Config
	World   *physics.PhysicsWorld
	Edifice *level.Edifice
	Scene   *engine.Scene
	Hero    *entities.Hero
	Room    *level.Room

	// Sounds fires for every cue played by an entity.
	Sounds engine.EventWithArg[engine.Cue]
	// Texts fires for every text box.
	Texts engine.EventWithArg[string]
	// LevelEnded fires once when the finish line is reached.
	LevelEnded engine.Event

	Debug bool

	registry    *engine.Registry
	bus         engine.EventWithArg[any]
	debugButton engine.Toggle
	ticks       int
	finished    bool
	text        string
	textTicks   int
}

var _ engine.Game = (*Game)(nil)

func New(cfg config.Config, reg *engine.Registry) *Game {
	g := &Game{
		Config:   cfg,
		Edifice:  level.NewEdifice(nil),
		Scene:    engine.NewScene("room"),
		Debug:    cfg.Game.Debug,
		registry: reg,
	}
	g.World = physics.NewPhysicsWorld(g.Edifice.Trace)
	g.World.GroundProbe = cfg.Physics.GroundProbe
	return g
}

// LoadLevel loads the room file at path and starts playing it.
func (g *Game) LoadLevel(path string) error {
	room, err := level.Load(path)
	if err != nil {
		return err
	}
	return g.LoadRoom(room)
}

// LoadRoom replaces the current room. Things of unknown type are skipped
// with a warning; any other factory error aborts the load.
func (g *Game) LoadRoom(room *level.Room) error {
	g.clear()

	g.Room = room
	g.Edifice.Brushes = room.Colliders

	g.Hero = entities.NewHero(g.Config.Hero)
	g.Hero.Pos = room.Start
	g.Spawn(g.Hero)

	for _, thing := range room.Things {
		e, err := g.registry.Create(thing.Type, thing.Config)
		if errors.Is(err, engine.ErrUnknownEntity) {
			log.Printf("Game: WARNING: skipping thing at %v: %v", thing.Pos, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("spawn %q: %w", thing.Type, err)
		}
		e.GetBody().Pos = thing.Pos
		g.Spawn(e)
	}

	log.Printf("Game: room loaded, %d entities, %d bodies", g.Scene.Len(), g.World.BodyCount())
	return nil
}

// Restart reloads the current room from scratch.
func (g *Game) Restart() error {
	if g.Room == nil {
		return nil
	}
	return g.LoadRoom(g.Room)
}

func (g *Game) clear() {
	for _, e := range g.Scene.Entities {
		e.Leave()
	}
	g.Scene = engine.NewScene("room")
	g.World.Clear()
	g.bus.RemoveAllListeners()
	g.Hero = nil
	g.ticks = 0
	g.finished = false
	g.text = ""
	g.textTicks = 0
}

// Tick advances the room by one tick: the hero reads its input, every
// entity ticks, overlaps are reported, then dead entities leave.
func (g *Game) Tick(c engine.Control) {
	if g.debugButton.Press(c.Debug) {
		g.Debug = !g.Debug
	}

	if g.Hero != nil {
		g.Hero.Think(c)
	}

	g.Scene.Tick()
	g.World.CheckForOverlaps()

	for _, e := range g.Scene.RemoveDead() {
		e.Leave()
		g.World.RemoveBody(e.GetBody())
	}

	if engine.Decrement(&g.textTicks) {
		g.text = ""
	}
	g.ticks++
}

func (g *Game) Ticks() int {
	return g.ticks
}

// Finished reports whether the level was completed.
func (g *Game) Finished() bool {
	return g.finished
}

// CurrentText returns the text box being shown, if any.
func (g *Game) CurrentText() (string, bool) {
	return g.text, g.textTicks > 0
}

// --- engine.Game ---

func (g *Game) Physics() movement.Probe {
	return g.World
}

func (g *Game) PlaySound(cue engine.Cue) {
	g.Sounds.Invoke(cue)
}

func (g *Game) TextBox(msg string) {
	g.text = msg
	g.textTicks = TextDuration
	g.Texts.Invoke(msg)
}

// Spawn enters e into the room. Entities spawned during a tick start
// ticking on the next one.
func (g *Game) Spawn(e engine.Entity) {
	engine.Attach(e, g)
	g.World.AddBody(e.GetBody())
	g.Scene.Add(e)
}

func (g *Game) PostEvent(evt any) {
	g.bus.Invoke(evt)
}

func (g *Game) Subscribe(fn func(evt any)) engine.ListenerID {
	return g.bus.AddListener(fn)
}

func (g *Game) Unsubscribe(id engine.ListenerID) {
	g.bus.RemoveListener(id)
}

func (g *Game) PlayerPosition() rl.Vector3 {
	if g.Hero == nil {
		return rl.Vector3{}
	}
	return g.Hero.Pos
}

func (g *Game) EndLevel() {
	if g.finished {
		return
	}
	g.finished = true
	log.Printf("Game: level finished after %d ticks", g.ticks)
	g.TextBox("level complete")
	g.LevelEnded.Invoke()
}

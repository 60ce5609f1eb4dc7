package entities

import (
	"math"

	"platformer/internal/config"
	"platformer/internal/engine"
	"platformer/internal/movement"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Delays, in ticks.
const (
	HurtDelay       = 500
	BlinkDelay      = 2000
	RespawnDelay    = 2000
	landingDebounce = 150
	useDebounce     = 200
)

// DeathDepth is the height under which the hero falls out of the world.
const DeathDepth = -15

var HeroSize = rl.Vector3{X: 0.7, Y: 0.7, Z: 1.7}

// Hero is the player: a non-solid box walked around with slide moves.
type Hero struct {
	engine.BaseEntity

	// Configuration
	Params config.Hero

	// Runtime state
	vel          rl.Vector3
	ground       bool
	life         int
	lookHorz     float32
	lookVert     float32
	control      engine.Control
	jumpButton   engine.Toggle
	respawnPoint rl.Vector3

	hurtDelay       int
	respawnDelay    int
	debounceLanding int
	debounceUse     int
}

func NewHero(params config.Hero) *Hero {
	h := &Hero{
		BaseEntity: engine.NewBaseEntity("hero"),
		Params:     params,
		life:       params.Life,
	}
	h.Size = HeroSize
	h.CollisionGroup = CGPlayer | CGSolidPlayer
	return h
}

func (h *Hero) Enter(g engine.Game) {
	h.BaseEntity.Enter(g)
	h.respawnPoint = h.Pos
}

func (h *Hero) Think(c engine.Control) {
	h.control = c
}

func (h *Hero) Health() float32 {
	return math32.Max(0, math32.Min(1, float32(h.life)/float32(h.Params.Life)))
}

func (h *Hero) Restore() {
	h.Blinking = BlinkDelay
	h.life = h.Params.Life
}

// Velocity is the current per-tick velocity.
func (h *Hero) Velocity() rl.Vector3 {
	return h.vel
}

// OnGround reports whether the last tick ended standing on something.
func (h *Hero) OnGround() bool {
	return h.ground
}

// LookDirection returns the unit vector the hero looks along.
func (h *Hero) LookDirection() rl.Vector3 {
	return movement.VectorFromAngles(h.lookHorz, h.lookVert)
}

func (h *Hero) Tick() {
	engine.Decrement(&h.Blinking)
	engine.Decrement(&h.hurtDelay)

	if h.hurtDelay > 0 || h.life <= 0 {
		h.control = engine.Control{}
	}

	h.lookHorz = h.control.LookHorz
	h.lookVert = h.control.LookVert

	if engine.Decrement(&h.respawnDelay) {
		h.Pos = h.respawnPoint
		h.vel = rl.Vector3{}
		h.Restore()
	}

	h.computeVelocity(h.control)

	body := h.GetBody()
	h.Physics.MoveBody(body, rl.Vector3{Z: h.Params.StairClimb})
	movement.SlideMove(h.Physics, body, h.vel)
	h.Physics.MoveBody(body, rl.Vector3{Z: -h.Params.StairClimb})

	if !movement.IsOnGround(h.Physics, body) {
		h.ground = false
	} else if h.vel.Z < 0 {
		if !h.ground && h.debounceLanding == 0 {
			h.debounceLanding = landingDebounce
			h.Game.PlaySound(engine.SndLand)
		}
		h.ground = true
		h.vel.Z = 0
	}

	engine.Decrement(&h.debounceLanding)
	engine.Decrement(&h.debounceUse)

	if h.control.Use && h.debounceUse == 0 {
		h.debounceUse = useDebounce
		h.use()
	}

	if h.control.Restart {
		h.OnDamage(10000)
	}

	h.CollisionGroup = CGPlayer
	if h.Blinking == 0 {
		h.CollisionGroup |= CGSolidPlayer
	}

	if h.respawnDelay == 0 && h.Pos.Z < DeathDepth {
		h.die()
	}
}

func (h *Hero) computeVelocity(c engine.Control) {
	h.airMove(c)

	h.vel.Z -= h.Params.Gravity

	if h.jumpButton.Press(c.Jump) && h.ground {
		h.Game.PlaySound(engine.SndJump)
		h.vel.Z = h.Params.JumpSpeed
	}

	// releasing the button early cuts the jump
	if h.vel.Z > 0 && !c.Jump {
		h.vel.Z = 0
	}

	limit := h.Params.MaxHorzSpeed
	h.vel.X = math32.Max(-limit, math32.Min(limit, h.vel.X))
	h.vel.Y = math32.Max(-limit, math32.Min(limit, h.vel.Y))
	h.vel.Z = math32.Max(h.vel.Z, -h.Params.MaxFallSpeed)
}

func (h *Hero) airMove(c engine.Control) {
	forward := movement.VectorFromAngles(h.lookHorz, 0)
	left := movement.VectorFromAngles(h.lookHorz+math.Pi/2, 0)

	var wanted rl.Vector3
	if c.Backward {
		wanted = rl.Vector3Subtract(wanted, forward)
	}
	if c.Forward {
		wanted = rl.Vector3Add(wanted, forward)
	}
	if c.Left {
		wanted = rl.Vector3Add(wanted, left)
	}
	if c.Right {
		wanted = rl.Vector3Subtract(wanted, left)
	}
	wanted = rl.Vector3Scale(wanted, h.Params.WalkSpeed)

	h.vel.X = h.vel.X*0.95 + wanted.X*0.05
	h.vel.Y = h.vel.Y*0.95 + wanted.Y*0.05

	const rest = 0.00001
	if math32.Abs(h.vel.X) < rest {
		h.vel.X = 0
	}
	if math32.Abs(h.vel.Y) < rest {
		h.vel.Y = 0
	}
	if math32.Abs(h.vel.Z) < rest {
		h.vel.Z = 0
	}
}

// use switches whatever is right in front of the hero.
func (h *Hero) use() {
	forward := movement.VectorFromAngles(h.lookHorz, 0)
	tr := h.Physics.TraceBox(h.Box(), forward, h.GetBody())
	if tr.Blocker == nil {
		return
	}
	if s, ok := tr.Blocker.Owner.(engine.Switchable); ok {
		s.OnSwitch()
	}
}

func (h *Hero) OnDamage(amount int) {
	if h.life <= 0 || h.Blinking > 0 {
		return
	}

	h.life -= amount
	if h.life <= 0 {
		h.die()
		return
	}

	h.hurtDelay = HurtDelay
	h.Blinking = BlinkDelay
	h.Game.PlaySound(engine.SndHurt)
}

func (h *Hero) die() {
	if h.life > 0 {
		h.life = 0
	}
	h.Game.PlaySound(engine.SndDie)
	h.respawnDelay = RespawnDelay
	h.Game.TextBox("game over")
}

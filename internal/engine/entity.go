package engine

import (
	"platformer/internal/movement"
	"platformer/internal/physics"
)

// Entity is a gameplay object living in the physics world.
type Entity interface {
	GetBody() *physics.Body
	Name() string
	Enter(g Game)
	Leave()
	Tick()
	OnCollide(other Entity)
	Dead() bool
}

// Damageable is implemented by entities that can be hurt.
type Damageable interface {
	OnDamage(amount int)
}

// Switchable is implemented by entities the player can "use" (doors, levers).
type Switchable interface {
	OnSwitch()
}

// Player is the entity driven by input.
type Player interface {
	Entity
	Think(c Control)
	Health() float32
	// Restore refills life and grants a short invulnerability.
	Restore()
}

// BaseEntity provides default implementations for the Entity interface.
// Embed it and override what the entity needs.
type BaseEntity struct {
	physics.Body

	Game    Game
	Physics movement.Probe

	// Blinking counts ticks of invulnerability or highlight.
	Blinking int

	name string
	dead bool
}

func NewBaseEntity(name string) BaseEntity {
	return BaseEntity{Body: *physics.NewBody(), name: name}
}

func (e *BaseEntity) GetBody() *physics.Body {
	return &e.Body
}

func (e *BaseEntity) Name() string {
	return e.name
}

func (e *BaseEntity) SetName(name string) {
	e.name = name
}

func (e *BaseEntity) Enter(g Game) {
	e.Game = g
	e.Physics = g.Physics()
}

func (e *BaseEntity) Leave() {}

func (e *BaseEntity) Tick() {}

func (e *BaseEntity) OnCollide(Entity) {}

func (e *BaseEntity) Dead() bool {
	return e.dead
}

// Hidden reports whether a blinking entity is in the off phase of its
// blink and should not be drawn.
func (e *BaseEntity) Hidden() bool {
	return e.Blinking > 0 && (e.Blinking/100)%2 == 1
}

// Kill marks the entity for removal at the end of the tick.
func (e *BaseEntity) Kill() {
	e.dead = true
}

// Attach connects e to its body and enters it into g. Collisions reported
// by the physics world on e's body reach e.OnCollide with the other entity.
func Attach(e Entity, g Game) {
	body := e.GetBody()
	body.Owner = e
	body.OnCollision = func(other *physics.Body) {
		if o, ok := other.Owner.(Entity); ok {
			e.OnCollide(o)
		}
	}
	e.Enter(g)
}

// Decrement counts *v down towards zero. It reports whether *v just
// reached zero.
func Decrement(v *int) bool {
	if *v <= 0 {
		return false
	}
	*v--
	return *v == 0
}

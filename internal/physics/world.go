package physics

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGroundProbe is how far below a body MoveBody looks for ground.
const DefaultGroundProbe = 0.1

// EdificeFunc sweeps a box by delta against the static level geometry.
// The returned trace never has a Blocker.
type EdificeFunc func(box Box, delta rl.Vector3) Trace

// PhysicsWorld moves bodies against each other and against the edifice.
// It does no integration: callers decide velocities, the world only answers
// how far a box can go.
//
// PhysicsWorld is not safe for concurrent use. Collision callbacks run in the
// middle of MoveBody and CheckForOverlaps and must not add or remove bodies.
type PhysicsWorld struct {
	// GroundProbe is the downward distance used to refresh Body.Ground.
	GroundProbe float32

	bodies  []*Body
	edifice EdificeFunc
}

// NewPhysicsWorld creates a world over the given edifice. A nil edifice
// means there is no static geometry.
func NewPhysicsWorld(edifice EdificeFunc) *PhysicsWorld {
	p := &PhysicsWorld{
		GroundProbe: DefaultGroundProbe,
		bodies:      make([]*Body, 0),
	}
	p.SetEdifice(edifice)
	return p
}

// SetEdifice replaces the static geometry query.
func (p *PhysicsWorld) SetEdifice(edifice EdificeFunc) {
	if edifice == nil {
		edifice = noEdifice
	}
	p.edifice = edifice
}

func noEdifice(Box, rl.Vector3) Trace {
	return Trace{Fraction: 1}
}

func (p *PhysicsWorld) AddBody(b *Body) {
	p.bodies = append(p.bodies, b)
}

// RemoveBody unregisters b. Body order is not preserved.
func (p *PhysicsWorld) RemoveBody(b *Body) {
	for i, other := range p.bodies {
		if other == b {
			last := len(p.bodies) - 1
			p.bodies[i] = p.bodies[last]
			p.bodies[last] = nil
			p.bodies = p.bodies[:last]
			break
		}
	}
	// nobody may keep standing on a body that left the world
	for _, other := range p.bodies {
		if other.Ground == b {
			other.Ground = nil
		}
	}
}

// Clear unregisters every body.
func (p *PhysicsWorld) Clear() {
	if len(p.bodies) > 0 {
		log.Printf("Physics: clearing %d bodies", len(p.bodies))
	}
	clear(p.bodies)
	p.bodies = p.bodies[:0]
}

// Bodies returns the registered bodies. The slice must not be modified.
func (p *PhysicsWorld) Bodies() []*Body {
	return p.bodies
}

// BodyCount returns the number of registered bodies.
func (p *PhysicsWorld) BodyCount() int {
	return len(p.bodies)
}

// MoveBody moves b by as much of delta as possible and returns the trace of
// the requested move. Pushers carry their riders and push what they sweep
// through; other bodies get their Ground refreshed.
func (p *PhysicsWorld) MoveBody(b *Body, delta rl.Vector3) Trace {
	box := b.Box()

	trace := p.TraceBox(box, delta, b)

	delta = rl.Vector3Scale(delta, trace.Fraction)
	moved := box.Translate(delta)

	if trace.Blocker != nil {
		collideBodies(b, trace.Blocker)
	}

	b.Pos = rl.Vector3Add(b.Pos, delta)

	if b.Pusher {
		swept := box.Union(moved)
		for _, other := range p.bodies {
			if other == b || other.Pusher {
				continue
			}
			// riders, then anything in the way
			if other.Ground == b || swept.Overlaps(other.Box()) {
				p.MoveBody(other, delta)
			}
		}
	} else {
		ground := p.TraceBox(moved, rl.Vector3Scale(Down, p.GroundProbe), b)
		if ground.Blocked() {
			b.Ground = ground.Blocker
		} else {
			b.Ground = nil
		}
	}

	return trace
}

// TraceBox sweeps box by delta against every solid body except one, and
// against the edifice. The most restrictive trace wins.
func (p *PhysicsWorld) TraceBox(box Box, delta rl.Vector3, except *Body) Trace {
	bodies := p.traceBodies(box, delta, except)
	edifice := p.edifice(box, delta)
	edifice.Blocker = nil

	if bodies.Fraction < edifice.Fraction {
		return bodies
	}
	return edifice
}

func (p *PhysicsWorld) traceBodies(box Box, delta rl.Vector3, except *Body) Trace {
	halfSize := box.HalfSize()
	a := box.Center()
	b := rl.Vector3Add(a, delta)

	r := Trace{Fraction: 1}

	for _, other := range p.bodies {
		if other == except || !other.Solid {
			continue
		}

		shape := AffineShape{Pos: other.Pos, Size: other.Size, Sub: other.shape()}
		tr := shape.Sweep(a, b, halfSize)

		if tr.Fraction < r.Fraction {
			r.Fraction = tr.Fraction
			r.Plane = tr.Plane
			r.Blocker = other
		}
	}

	return r
}

// CheckForOverlaps notifies every pair of bodies whose boxes overlap,
// whether or not either of them moved.
func (p *PhysicsWorld) CheckForOverlaps() {
	for i, j := range AllPairs(len(p.bodies)) {
		me, other := p.bodies[i], p.bodies[j]
		if me.Box().Overlaps(other.Box()) {
			collideBodies(me, other)
		}
	}
}

// collideBodies notifies each side that is interested in the other.
func collideBodies(me, other *Body) {
	if other.CollidesWith&me.CollisionGroup != 0 {
		other.collide(me)
	}
	if me.CollidesWith&other.CollisionGroup != 0 {
		me.collide(other)
	}
}

// GetBodiesInBox returns the first body, other than except, that belongs to
// one of the given collision groups and overlaps box. It returns nil when
// there is none.
func (p *PhysicsWorld) GetBodiesInBox(box Box, collisionGroup uint16, onlySolid bool, except *Body) *Body {
	for _, b := range p.bodies {
		if b == except {
			continue
		}
		if onlySolid && !b.Solid {
			continue
		}
		if b.CollisionGroup&collisionGroup == 0 {
			continue
		}
		if b.Box().Overlaps(box) {
			return b
		}
	}
	return nil
}

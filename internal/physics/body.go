package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AllGroups matches every collision group.
const AllGroups uint16 = 0xFFFF

// Body is a collidable axis-aligned box registered in a PhysicsWorld.
// The world only references bodies; their owners keep them alive.
type Body struct {
	Pos  rl.Vector3
	Size rl.Vector3

	// Solid bodies block moves.
	Solid bool

	// Pusher bodies carry their riders and push what they overlap.
	Pusher bool

	// OnCollision is called with other only when
	// CollidesWith & other.CollisionGroup != 0.
	CollisionGroup uint16
	CollidesWith   uint16
	OnCollision    func(other *Body)

	// Ground is the body we rest on, if any. Refreshed by PhysicsWorld.MoveBody.
	Ground *Body

	// Shape in unit space, stretched over the body's box. Nil means a box.
	Shape Shape

	// Owner is the gameplay object this body belongs to.
	Owner any
}

func NewBody() *Body {
	return &Body{
		Size:           UnitSize,
		CollisionGroup: 1,
		CollidesWith:   AllGroups,
		Shape:          BoxShape(),
	}
}

func (b *Body) Box() Box {
	return Box{Pos: b.Pos, Size: b.Size}
}

// Center returns the center of the body's box.
func (b *Body) Center() rl.Vector3 {
	return b.Box().Center()
}

func (b *Body) shape() Shape {
	if b.Shape == nil {
		return BoxShape()
	}
	return b.Shape
}

func (b *Body) collide(other *Body) {
	if b.OnCollision != nil {
		b.OnCollision(other)
	}
}

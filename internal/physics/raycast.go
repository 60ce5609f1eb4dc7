package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Body     *Body // nil when the edifice was hit
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast sweeps a point from origin along direction for at most
// maxDistance and returns the first hit, bodies and edifice alike.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, except *Body) (RaycastHit, bool) {
	return p.SweepBox(Box{Pos: origin}, direction, maxDistance, except)
}

// SweepBox is Raycast for a box: box is swept along direction for at most
// maxDistance. The hit point is the box center at the time of impact.
func (p *PhysicsWorld) SweepBox(box Box, direction rl.Vector3, maxDistance float32, except *Body) (RaycastHit, bool) {
	if maxDistance <= 0 || rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)
	delta := rl.Vector3Scale(direction, maxDistance)

	trace := p.TraceBox(box, delta, except)
	if !trace.Blocked() {
		return RaycastHit{}, false
	}

	distance := trace.Fraction * maxDistance
	return RaycastHit{
		Body:     trace.Blocker,
		Point:    rl.Vector3Add(box.Center(), rl.Vector3Scale(direction, distance)),
		Normal:   trace.Plane.N,
		Distance: distance,
	}, true
}

// Package movement resolves entity moves on top of the physics world's
// single-step MoveBody.
package movement

import (
	"platformer/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxSlideIterations bounds the work done by SlideMove.
const MaxSlideIterations = 5

// GroundNormalZ is the smallest upward normal component still considered
// floor rather than wall.
const GroundNormalZ = 0.71

// Probe is the physics world as seen by entities.
type Probe interface {
	MoveBody(b *physics.Body, delta rl.Vector3) physics.Trace
	TraceBox(box physics.Box, delta rl.Vector3, except *physics.Body) physics.Trace
	GetBodiesInBox(box physics.Box, collisionGroup uint16, onlySolid bool, except *physics.Body) *physics.Body
}

var _ Probe = (*physics.PhysicsWorld)(nil)

// SlideMove moves b by delta, sliding along whatever blocks it.
func SlideMove(probe Probe, b *physics.Body, delta rl.Vector3) {
	for range MaxSlideIterations {
		tr := probe.MoveBody(b, delta)
		if tr.Fraction == 1 {
			break
		}

		// drop the part of the move that succeeded
		delta = rl.Vector3Subtract(delta, rl.Vector3Scale(delta, tr.Fraction))

		// and what remains along the blocking normal
		n := tr.Plane.N
		delta = rl.Vector3Subtract(delta, rl.Vector3Scale(n, rl.Vector3DotProduct(delta, n)))
	}
}

// AxisBlocked tells which axes of a SlideMoveAxes were stopped short.
type AxisBlocked struct {
	X, Y, Z bool
}

// Any reports whether at least one axis was blocked.
func (a AxisBlocked) Any() bool {
	return a.X || a.Y || a.Z
}

// SlideMoveAxes moves b one axis at a time. It does not slide along slopes;
// simple movers use it to learn which direction they bumped into.
func SlideMoveAxes(probe Probe, b *physics.Body, delta rl.Vector3) AxisBlocked {
	var r AxisBlocked
	if delta.X != 0 {
		r.X = probe.MoveBody(b, rl.Vector3{X: delta.X}).Blocked()
	}
	if delta.Y != 0 {
		r.Y = probe.MoveBody(b, rl.Vector3{Y: delta.Y}).Blocked()
	}
	if delta.Z != 0 {
		r.Z = probe.MoveBody(b, rl.Vector3{Z: delta.Z}).Blocked()
	}
	return r
}

// IsOnGround reports whether b stands on something reasonably horizontal.
// When the full box only touches a slope or an edge, a thinner box is tried.
func IsOnGround(probe Probe, b *physics.Body) bool {
	box := b.Box()
	probeDown := rl.Vector3Scale(physics.Down, 0.1)

	tr := probe.TraceBox(box, probeDown, b)
	if !tr.Blocked() {
		return false
	}
	if tr.Plane.N.Z > GroundNormalZ {
		return true
	}

	thin := physics.Box{
		Pos: rl.Vector3{
			X: box.Pos.X + box.Size.X*0.25,
			Y: box.Pos.Y + box.Size.Y*0.25,
			Z: box.Pos.Z,
		},
		Size: rl.Vector3{X: box.Size.X * 0.5, Y: box.Size.Y * 0.5, Z: box.Size.Z},
	}

	tr = probe.TraceBox(thin, probeDown, b)
	return tr.Blocked() && tr.Plane.N.Z > GroundNormalZ
}

// VectorFromAngles returns the unit vector for a heading alpha and a pitch
// beta, both in radians.
func VectorFromAngles(alpha, beta float32) rl.Vector3 {
	return rl.Vector3{
		X: math32.Cos(alpha) * math32.Cos(beta),
		Y: math32.Sin(alpha) * math32.Cos(beta),
		Z: math32.Sin(beta),
	}
}

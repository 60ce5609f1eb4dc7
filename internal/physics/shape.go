package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Shape is anything a box can be swept against.
// A and B are the swept box center at the start and end of the move.
type Shape interface {
	Sweep(a, b, halfSize rl.Vector3) Trace
}

// ConvexShape adapts a Convex to the Shape interface.
type ConvexShape struct {
	Convex
}

func (s ConvexShape) Sweep(a, b, halfSize rl.Vector3) Trace {
	return s.Trace(a, b, halfSize)
}

// unitCube spans [0,1] on every axis.
var unitCube = ConvexShape{Convex{Planes: []Plane{
	{N: rl.Vector3{X: -1}, D: 0},
	{N: rl.Vector3{X: +1}, D: 1},
	{N: rl.Vector3{Y: -1}, D: 0},
	{N: rl.Vector3{Y: +1}, D: 1},
	{N: rl.Vector3{Z: -1}, D: 0},
	{N: rl.Vector3{Z: +1}, D: 1},
}}}

// BoxShape returns the shared unit-cube shape used by plain bodies.
// Bodies are mapped onto it through an AffineShape.
func BoxShape() Shape {
	return unitCube
}

// AffineShape places a unit-space Sub shape at Pos, stretched to Size.
// World-space sweeps are mapped into Sub's space and the blocking plane is
// mapped back.
type AffineShape struct {
	Pos  rl.Vector3
	Size rl.Vector3
	Sub  Shape
}

func (s AffineShape) Sweep(a, b, halfSize rl.Vector3) Trace {
	tr := s.Sub.Sweep(s.transform(a), s.transform(b), div(halfSize, s.Size))
	if tr.Blocked() {
		tr.Plane = s.planeToWorld(tr.Plane)
	}
	return tr
}

// transform maps (Pos .. Pos+Size) to (0 .. 1).
func (s AffineShape) transform(v rl.Vector3) rl.Vector3 {
	return div(rl.Vector3Subtract(v, s.Pos), s.Size)
}

// planeToWorld is the inverse-transpose of transform applied to a plane.
func (s AffineShape) planeToWorld(p Plane) Plane {
	n := div(p.N, s.Size)
	length := rl.Vector3Length(n)
	if length == 0 {
		return p
	}
	return Plane{
		N: rl.Vector3Scale(n, 1/length),
		D: (p.D + rl.Vector3DotProduct(s.Pos, n)) / length,
	}
}

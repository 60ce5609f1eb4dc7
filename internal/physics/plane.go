package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Plane is a unit normal N and a distance D from the origin along N.
// Points with a positive distance are outside (in front of the plane).
type Plane struct {
	N rl.Vector3
	D float32
}

// PlaneFromPoint returns the plane with normal n passing through p.
func PlaneFromPoint(n, p rl.Vector3) Plane {
	return Plane{N: n, D: rl.Vector3DotProduct(n, p)}
}

// Dist returns the signed distance from pos to the plane.
func (p Plane) Dist(pos rl.Vector3) float32 {
	return rl.Vector3DotProduct(pos, p.N) - p.D
}

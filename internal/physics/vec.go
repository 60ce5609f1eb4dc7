package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Z is up.
var (
	Up       = rl.Vector3{X: 0, Y: 0, Z: 1}
	Down     = rl.Vector3{X: 0, Y: 0, Z: -1}
	UnitSize = rl.Vector3{X: 1, Y: 1, Z: 1}
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// projectedRadius is the extent of a box with the given half size along n.
func projectedRadius(halfSize, n rl.Vector3) float32 {
	return math32.Abs(halfSize.X*n.X) + math32.Abs(halfSize.Y*n.Y) + math32.Abs(halfSize.Z*n.Z)
}

// div is component-wise.
func div(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z}
}

func minVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)}
}

func maxVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)}
}

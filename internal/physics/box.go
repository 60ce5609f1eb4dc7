package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an axis-aligned box spanning Pos .. Pos+Size.
type Box struct {
	Pos  rl.Vector3
	Size rl.Vector3
}

// NewBoxFromCenter creates a Box from a center point and full size dimensions.
func NewBoxFromCenter(center, size rl.Vector3) Box {
	return Box{
		Pos:  rl.Vector3Subtract(center, rl.Vector3Scale(size, 0.5)),
		Size: size,
	}
}

func (b Box) HalfSize() rl.Vector3 {
	return rl.Vector3Scale(b.Size, 0.5)
}

func (b Box) Center() rl.Vector3 {
	return rl.Vector3Add(b.Pos, b.HalfSize())
}

func (b Box) Max() rl.Vector3 {
	return rl.Vector3Add(b.Pos, b.Size)
}

// Translate returns the box moved by delta.
func (b Box) Translate(delta rl.Vector3) Box {
	return Box{Pos: rl.Vector3Add(b.Pos, delta), Size: b.Size}
}

// Union returns the smallest box containing both a and b.
func (b Box) Union(other Box) Box {
	lo := minVec(b.Pos, other.Pos)
	hi := maxVec(b.Max(), other.Max())
	return Box{Pos: lo, Size: rl.Vector3Subtract(hi, lo)}
}

// Overlaps reports whether the interiors of both boxes intersect.
// Boxes that merely touch do not overlap.
func (b Box) Overlaps(other Box) bool {
	return segmentsOverlap(b.Pos.X, b.Size.X, other.Pos.X, other.Size.X) &&
		segmentsOverlap(b.Pos.Y, b.Size.Y, other.Pos.Y, other.Size.Y) &&
		segmentsOverlap(b.Pos.Z, b.Size.Z, other.Pos.Z, other.Size.Z)
}

// segmentsOverlap tests [a0, a0+aLen) against [b0, b0+bLen).
func segmentsOverlap(a0, aLen, b0, bLen float32) bool {
	if a0 > b0 {
		a0, aLen, b0 = b0, bLen, a0
	}
	return b0 < a0+aLen
}

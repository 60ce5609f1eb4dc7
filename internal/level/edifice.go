package level

import (
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Edifice is the static geometry of a room: a set of convex brushes.
type Edifice struct {
	Brushes []physics.Convex
}

func NewEdifice(brushes []physics.Convex) *Edifice {
	return &Edifice{Brushes: brushes}
}

// Trace sweeps box by delta against every brush and keeps the earliest hit.
// It has the physics.EdificeFunc signature.
func (e *Edifice) Trace(box physics.Box, delta rl.Vector3) physics.Trace {
	halfSize := box.HalfSize()
	a := box.Center()
	b := rl.Vector3Add(a, delta)

	r := physics.Trace{Fraction: 1}
	for _, brush := range e.Brushes {
		tr := brush.Trace(a, b, halfSize)
		if tr.Fraction < r.Fraction {
			r = tr
		}
	}
	return r
}

// Overlaps reports whether box is inside any brush.
func (e *Edifice) Overlaps(box physics.Box) bool {
	halfSize := box.HalfSize()
	center := box.Center()
	for _, brush := range e.Brushes {
		if brush.Contains(center, halfSize) {
			return true
		}
	}
	return false
}

package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Epsilon biases sweep entry earlier and exit later so that a mover stops
// short of a surface instead of resting exactly on it.
const Epsilon = 1.0 / 128.0

// Trace is the result of a sweep.
type Trace struct {
	// Fraction of the requested move that is safe to execute; 1 means clear.
	Fraction float32

	// Plane is the first blocking plane. Only meaningful when Fraction < 1.
	Plane Plane

	// Blocker is the body responsible for the block, or nil when the
	// edifice blocked. Shapes never set it; World does.
	Blocker *Body
}

// Blocked reports whether the sweep was stopped short.
func (t Trace) Blocked() bool {
	return t.Fraction < 1
}

// Convex is the intersection of the half-spaces behind each of its planes.
// A convex without planes is unbounded space and never blocks.
type Convex struct {
	Planes []Plane
}

// Trace sweeps a box with the given half size from A to B (box centers).
// Each plane is pushed out by the box's extent along its normal, which turns
// the box sweep into a point sweep against the inflated convex.
func (c Convex) Trace(a, b, halfSize rl.Vector3) Trace {
	trace := Trace{Fraction: 1}

	var clipPlane Plane
	enter := float32(-1)
	leave := float32(1)

	for _, plane := range c.Planes {
		radius := projectedRadius(halfSize, plane.N)
		distA := plane.Dist(a) - radius
		distB := plane.Dist(b) - radius

		// entirely in front of this plane: never inside the convex
		if distA > 0 && distB > 0 {
			return trace
		}

		// entirely behind this plane: not constrained by it
		if distA <= 0 && distB <= 0 {
			continue
		}

		if distA > 0 {
			// entering
			f := clamp((distA-Epsilon)/(distA-distB), 0, 1)
			if f > enter {
				enter = f
				clipPlane = plane
			}
		} else {
			// leaving
			f := clamp((distA+Epsilon)/(distA-distB), 0, 1)
			if f < leave {
				leave = f
			}
		}
	}

	if enter > -1 && enter < leave {
		trace.Fraction = enter
		trace.Plane = clipPlane
	}

	return trace
}

// Contains reports whether a box with the given half size centered on p
// is strictly inside the inflated convex.
func (c Convex) Contains(p, halfSize rl.Vector3) bool {
	if len(c.Planes) == 0 {
		return false
	}
	for _, plane := range c.Planes {
		if plane.Dist(p)-projectedRadius(halfSize, plane.N) >= 0 {
			return false
		}
	}
	return true
}
